package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/importers"
)

// maxRosterSize caps spreadsheet uploads.
const maxRosterSize = 10 << 20

type StudentsController struct {
	store    StudentStore
	importer RosterImporter
}

func NewStudentsController(store StudentStore, importer RosterImporter) *StudentsController {
	return &StudentsController{store: store, importer: importer}
}

type studentSearchQuery struct {
	PageQuery
	Name          string `form:"name" binding:"max=255"`
	BirthYearFrom *int   `form:"birth_year_from" binding:"omitempty,min=1900"`
	BirthYearTo   *int   `form:"birth_year_to" binding:"omitempty,min=1900"`
}

func studentNotFound(id uint) string {
	return fmt.Sprintf("Student with ID %d not found", id)
}

func (controller *StudentsController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("", controller.CreateStudent)
	group.GET("", controller.ListStudents)
	group.GET("/search", controller.ListStudents)
	group.POST("/import", controller.ImportRoster)
	group.GET("/:id", controller.GetStudent)
	group.PUT("/:id", controller.UpdateStudent)
	group.PATCH("/:id", controller.UpdateStudent)
	group.DELETE("/:id", controller.DeleteStudent)
	group.GET("/:id/grades", controller.ListStudentGrades)
}

func (controller *StudentsController) CreateStudent(c *gin.Context) {
	var student entities.Student
	if err := c.ShouldBindJSON(&student); err != nil {
		respondBindingError(c, err)
		return
	}
	if err := controller.store.CreateStudent(&student); err != nil {
		respondStoreError(c, err, "", "create student")
		return
	}
	respondCreated(c, student)
}

// ListStudents serves both the plain listing and /search; filters are optional.
func (controller *StudentsController) ListStudents(c *gin.Context) {
	var query studentSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}
	filter := entities.StudentFilter{
		Name:          query.Name,
		BirthYearFrom: query.BirthYearFrom,
		BirthYearTo:   query.BirthYearTo,
	}
	page := query.page()
	students, total, err := controller.store.ListStudents(filter, page)
	if err != nil {
		respondInternalError(c, err, "list students")
		return
	}
	c.JSON(http.StatusOK, paginated("students", students, total, page))
}

func (controller *StudentsController) GetStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	student, err := controller.store.GetStudentByID(id)
	if err != nil {
		respondStoreError(c, err, studentNotFound(id), "get student")
		return
	}
	c.JSON(http.StatusOK, student)
}

func (controller *StudentsController) UpdateStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var patch entities.StudentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindingError(c, err)
		return
	}
	student, err := controller.store.UpdateStudent(id, patch)
	if err != nil {
		respondStoreError(c, err, studentNotFound(id), "update student")
		return
	}
	c.JSON(http.StatusOK, student)
}

func (controller *StudentsController) DeleteStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := controller.store.DeleteStudent(id); err != nil {
		respondStoreError(c, err, studentNotFound(id), "delete student")
		return
	}
	c.Status(http.StatusNoContent)
}

func (controller *StudentsController) ListStudentGrades(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	grades, err := controller.store.ListStudentGrades(id)
	if err != nil {
		respondStoreError(c, err, studentNotFound(id), "list student grades")
		return
	}
	c.JSON(http.StatusOK, gin.H{"student_id": id, "grades": grades, "count": len(grades)})
}

// ImportRoster accepts a multipart upload with the workbook in the "file" field.
func (controller *StudentsController) ImportRoster(c *gin.Context) {
	if controller.importer == nil {
		respondError(c, http.StatusNotImplemented, "roster import is not configured")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRosterSize)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, "file is too large")
			return
		}
		respondBadRequest(c, "No file uploaded")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondInternalError(c, err, "open roster upload")
		return
	}
	defer file.Close()

	result, err := controller.importer.Import(file)
	if err != nil {
		if errors.Is(err, importers.ErrInvalidWorkbook) {
			respondBadRequest(c, err.Error())
			return
		}
		respondStoreError(c, err, "", "import roster")
		return
	}
	respondCreated(c, result)
}
