package http

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mrlokans/bookshelf/internal/entities"
)

func createStudentViaAPI(t *testing.T, env *testEnv, body any) entities.Student {
	t.Helper()
	w := env.do(t, http.MethodPost, "/students", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[entities.Student](t, w)
}

func TestStudentsController_CRUD(t *testing.T) {
	env := setupTestEnv(t)
	ada := createStudentViaAPI(t, env, map[string]any{"name": "Ada Lovelace", "birth_year": 2001})
	path := fmt.Sprintf("/students/%d", ada.ID)

	t.Run("get", func(t *testing.T) {
		w := env.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Ada Lovelace", decode[entities.Student](t, w).Name)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/students", map[string]any{"name": "ada lovelace"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("patch keeps other fields", func(t *testing.T) {
		w := env.do(t, http.MethodPatch, path, map[string]any{"notes": "front row"})
		assert.Equal(t, http.StatusOK, w.Code)
		student := decode[entities.Student](t, w)
		assert.Equal(t, "front row", student.Notes)
		assert.Equal(t, 2001, *student.BirthYear)
	})

	t.Run("validation", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/students", map[string]any{"name": " ", "birth_year": 1800})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		details := decode[ErrorResponse](t, w).Details
		assert.Contains(t, details, "name")
		assert.Contains(t, details, "birth_year")
	})

	t.Run("student with grades cannot be deleted", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/grades", map[string]any{"student_id": ada.ID, "subject": "Math", "score": 90})
		require.Equal(t, http.StatusCreated, w.Code)

		w = env.do(t, http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("grades of a student", func(t *testing.T) {
		w := env.do(t, http.MethodGet, path+"/grades", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[struct {
			Grades []entities.Grade `json:"grades"`
			Count  int              `json:"count"`
		}](t, w)
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, "Math", resp.Grades[0].Subject)

		w = env.do(t, http.MethodGet, "/students/999/grades", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Student with ID 999 not found", decode[ErrorResponse](t, w).Error)
	})

	t.Run("delete without grades", func(t *testing.T) {
		grace := createStudentViaAPI(t, env, map[string]any{"name": "Grace Hopper"})
		w := env.do(t, http.MethodDelete, fmt.Sprintf("/students/%d", grace.ID), nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestStudentsController_Search(t *testing.T) {
	env := setupTestEnv(t)
	createStudentViaAPI(t, env, map[string]any{"name": "Ada Lovelace", "birth_year": 2001})
	createStudentViaAPI(t, env, map[string]any{"name": "Alan Turing", "birth_year": 2003})
	createStudentViaAPI(t, env, map[string]any{"name": "Grace Hopper", "birth_year": 2005})

	w := env.do(t, http.MethodGet, "/students/search?name=AL&birth_year_from=2002", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[listResponse[entities.Student]](t, w)
	require.Len(t, resp.Students, 1)
	assert.Equal(t, "Alan Turing", resp.Students[0].Name)

	w = env.do(t, http.MethodGet, "/students?page_size=2", nil)
	resp = decode[listResponse[entities.Student]](t, w)
	assert.Len(t, resp.Students, 2)
	assert.Equal(t, int64(3), resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
}

func rosterUpload(t *testing.T, rows [][]any) (*bytes.Buffer, string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "roster.xlsx")
	require.NoError(t, err)
	require.NoError(t, f.Write(part))
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestStudentsController_Import(t *testing.T) {
	env := setupTestEnv(t)

	t.Run("imports students and grades", func(t *testing.T) {
		body, contentType := rosterUpload(t, [][]any{
			{"name", "birth_year", "subject", "score"},
			{"Ada", 2001, "Math", 95},
			{"Ada", "", "Physics", 88},
			{"Alan", 2003, "", ""},
		})

		req := httptest.NewRequest(http.MethodPost, "/students/import", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		result := decode[entities.ImportResult](t, w)
		assert.Equal(t, entities.ImportResult{Rows: 3, StudentsCreated: 2, GradesCreated: 2}, result)
	})

	t.Run("invalid row is rejected", func(t *testing.T) {
		body, contentType := rosterUpload(t, [][]any{
			{"name", "subject", "score"},
			{"Grace", "Math", 150},
		})

		req := httptest.NewRequest(http.MethodPost, "/students/import", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[ErrorResponse](t, w).Details, "row 2: score")
	})

	t.Run("missing file", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/students/import", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not a workbook", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile("file", "roster.csv")
		require.NoError(t, err)
		_, err = part.Write([]byte("name\nAda\n"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/students/import", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
