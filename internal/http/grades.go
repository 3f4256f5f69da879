package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/entities"
)

type GradesController struct {
	store GradeStore
}

func NewGradesController(store GradeStore) *GradesController {
	return &GradesController{store: store}
}

type gradeListQuery struct {
	PageQuery
	StudentID uint   `form:"student_id"`
	Subject   string `form:"subject" binding:"max=100"`
	MinScore  *int   `form:"min_score" binding:"omitempty,min=1,max=100"`
	MaxScore  *int   `form:"max_score" binding:"omitempty,min=1,max=100"`
}

func gradeNotFound(id uint) string {
	return fmt.Sprintf("Grade with ID %d not found", id)
}

func (controller *GradesController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("", controller.CreateGrade)
	group.GET("", controller.ListGrades)
	group.GET("/:id", controller.GetGrade)
	group.PUT("/:id", controller.UpdateGrade)
	group.PATCH("/:id", controller.UpdateGrade)
	group.DELETE("/:id", controller.DeleteGrade)
}

func (controller *GradesController) CreateGrade(c *gin.Context) {
	var grade entities.Grade
	if err := c.ShouldBindJSON(&grade); err != nil {
		respondBindingError(c, err)
		return
	}
	if err := controller.store.CreateGrade(&grade); err != nil {
		respondStoreError(c, err, "", "create grade")
		return
	}
	respondCreated(c, grade)
}

func (controller *GradesController) ListGrades(c *gin.Context) {
	var query gradeListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}
	filter := entities.GradeFilter{
		StudentID: query.StudentID,
		Subject:   query.Subject,
		MinScore:  query.MinScore,
		MaxScore:  query.MaxScore,
	}
	page := query.page()
	grades, total, err := controller.store.ListGrades(filter, page)
	if err != nil {
		respondInternalError(c, err, "list grades")
		return
	}
	c.JSON(http.StatusOK, paginated("grades", grades, total, page))
}

func (controller *GradesController) GetGrade(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	grade, err := controller.store.GetGradeByID(id)
	if err != nil {
		respondStoreError(c, err, gradeNotFound(id), "get grade")
		return
	}
	c.JSON(http.StatusOK, grade)
}

func (controller *GradesController) UpdateGrade(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var patch entities.GradePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindingError(c, err)
		return
	}
	grade, err := controller.store.UpdateGrade(id, patch)
	if err != nil {
		respondStoreError(c, err, gradeNotFound(id), "update grade")
		return
	}
	c.JSON(http.StatusOK, grade)
}

func (controller *GradesController) DeleteGrade(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := controller.store.DeleteGrade(id); err != nil {
		respondStoreError(c, err, gradeNotFound(id), "delete grade")
		return
	}
	c.Status(http.StatusNoContent)
}
