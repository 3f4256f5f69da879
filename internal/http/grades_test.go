package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/entities"
)

func TestGradesController(t *testing.T) {
	env := setupTestEnv(t)
	ada := createStudentViaAPI(t, env, map[string]any{"name": "Ada"})
	alan := createStudentViaAPI(t, env, map[string]any{"name": "Alan"})

	w := env.do(t, http.MethodPost, "/grades", map[string]any{"student_id": ada.ID, "subject": " Math ", "score": 91})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	grade := decode[entities.Grade](t, w)
	assert.Equal(t, "Math", grade.Subject)
	path := fmt.Sprintf("/grades/%d", grade.ID)

	for _, g := range []map[string]any{
		{"student_id": ada.ID, "subject": "Physics", "score": 60},
		{"student_id": alan.ID, "subject": "Math", "score": 75},
	} {
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/grades", g).Code)
	}

	t.Run("score outside 1..100", func(t *testing.T) {
		for _, score := range []int{0, 101} {
			w := env.do(t, http.MethodPost, "/grades", map[string]any{"student_id": ada.ID, "subject": "Math", "score": score})
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decode[ErrorResponse](t, w).Details, "score")
		}
	})

	t.Run("unknown student conflicts", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/grades", map[string]any{"student_id": 999, "subject": "Math", "score": 50})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("filters", func(t *testing.T) {
		tests := []struct {
			query string
			total int64
		}{
			{"", 3},
			{fmt.Sprintf("student_id=%d", ada.ID), 2},
			{"subject=Math", 2},
			{"min_score=70&max_score=80", 1},
			{fmt.Sprintf("student_id=%d&subject=Math", alan.ID), 1},
		}
		for _, tt := range tests {
			w := env.do(t, http.MethodGet, "/grades?"+tt.query, nil)
			require.Equal(t, http.StatusOK, w.Code, tt.query)
			resp := decode[listResponse[entities.Grade]](t, w)
			assert.Equal(t, tt.total, resp.Total, tt.query)
		}

		w := env.do(t, http.MethodGet, "/grades?min_score=0", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update", func(t *testing.T) {
		w := env.do(t, http.MethodPut, path, map[string]any{"score": 99})
		assert.Equal(t, http.StatusOK, w.Code)
		updated := decode[entities.Grade](t, w)
		assert.Equal(t, 99, updated.Score)
		assert.Equal(t, ada.ID, updated.StudentID)

		w = env.do(t, http.MethodPatch, path, map[string]any{"student_id": 999})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, env.do(t, http.MethodDelete, path, nil).Code)
		w := env.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, fmt.Sprintf("Grade with ID %d not found", grade.ID), decode[ErrorResponse](t, w).Error)
	})
}
