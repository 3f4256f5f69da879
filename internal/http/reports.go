package http

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/exporters"
)

type ReportsController struct {
	store    ReportStore
	exporter *exporters.ReportExporter
}

func NewReportsController(store ReportStore) *ReportsController {
	return &ReportsController{
		store:    store,
		exporter: exporters.NewReportExporter(store),
	}
}

type topQuery struct {
	Limit int `form:"limit,default=3" binding:"min=1,max=100"`
}

type belowQuery struct {
	Threshold int `form:"threshold" binding:"required,min=1,max=101"`
}

func (controller *ReportsController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/averages", controller.StudentAverages)
	group.GET("/subjects", controller.SubjectAverages)
	group.GET("/top", controller.TopStudents)
	group.GET("/below", controller.StudentsBelow)
	group.GET("/summary", controller.Summary)
	group.GET("/export.xlsx", controller.Export)
}

func (controller *ReportsController) StudentAverages(c *gin.Context) {
	rows, err := controller.store.StudentAverages()
	if err != nil {
		respondInternalError(c, err, "student averages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"students": rows})
}

func (controller *ReportsController) SubjectAverages(c *gin.Context) {
	rows, err := controller.store.SubjectAverages()
	if err != nil {
		respondInternalError(c, err, "subject averages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"subjects": rows})
}

func (controller *ReportsController) TopStudents(c *gin.Context) {
	var query topQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}
	rows, err := controller.store.TopStudents(query.Limit)
	if err != nil {
		respondStoreError(c, err, "", "top students")
		return
	}
	c.JSON(http.StatusOK, gin.H{"limit": query.Limit, "students": rows})
}

func (controller *ReportsController) StudentsBelow(c *gin.Context) {
	var query belowQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}
	rows, err := controller.store.StudentsBelow(query.Threshold)
	if err != nil {
		respondInternalError(c, err, "students below threshold")
		return
	}
	c.JSON(http.StatusOK, gin.H{"threshold": query.Threshold, "students": rows})
}

func (controller *ReportsController) Summary(c *gin.Context) {
	summary, err := controller.store.Summary()
	if err != nil {
		respondInternalError(c, err, "gradebook summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Export sends the report workbook as a download. The workbook is rendered
// in memory first so a failure still produces a JSON error.
func (controller *ReportsController) Export(c *gin.Context) {
	var buf bytes.Buffer
	if _, err := controller.exporter.Write(&buf); err != nil {
		respondInternalError(c, err, "export report")
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+exporters.FileName(time.Now()))
	c.Data(http.StatusOK, exporters.ContentTypeXLSX, buf.Bytes())
}
