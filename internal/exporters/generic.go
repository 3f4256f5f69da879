package exporters

import "github.com/mrlokans/bookshelf/internal/entities"

// ReportSource supplies the aggregates that make up the gradebook workbook.
type ReportSource interface {
	StudentAverages() ([]entities.StudentAverage, error)
	SubjectAverages() ([]entities.SubjectAverage, error)
	Summary() (*entities.GradebookSummary, error)
}

type ExportResult struct {
	Students int `json:"students"`
	Subjects int `json:"subjects"`
}
