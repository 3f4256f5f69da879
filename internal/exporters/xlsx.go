// Package exporters renders gradebook reports as spreadsheets.
package exporters

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	SheetStudents = "Students"
	SheetSubjects = "Subjects"
	SheetSummary  = "Summary"
)

// ReportExporter writes a three-sheet workbook: per-student averages,
// per-subject statistics and the overall summary.
type ReportExporter struct {
	source ReportSource
}

func NewReportExporter(source ReportSource) *ReportExporter {
	return &ReportExporter{source: source}
}

// FileName returns a timestamped download name for the workbook.
func FileName(now time.Time) string {
	return fmt.Sprintf("gradebook_report_%s.xlsx", now.Format("20060102_150405"))
}

// Write renders the workbook into w.
func (e *ReportExporter) Write(w io.Writer) (ExportResult, error) {
	students, err := e.source.StudentAverages()
	if err != nil {
		return ExportResult{}, err
	}
	subjects, err := e.source.SubjectAverages()
	if err != nil {
		return ExportResult{}, err
	}
	summary, err := e.source.Summary()
	if err != nil {
		return ExportResult{}, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing workbook: %v", err)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetStudents); err != nil {
		return ExportResult{}, err
	}
	rows := [][]any{{"Student ID", "Name", "Grades", "Average"}}
	for _, s := range students {
		rows = append(rows, []any{s.StudentID, s.Name, s.GradeCount, optionalFloat(s.Average)})
	}
	if err := writeRows(f, SheetStudents, rows); err != nil {
		return ExportResult{}, err
	}

	if _, err := f.NewSheet(SheetSubjects); err != nil {
		return ExportResult{}, err
	}
	rows = [][]any{{"Subject", "Grades", "Average", "Min", "Max"}}
	for _, s := range subjects {
		rows = append(rows, []any{s.Subject, s.GradeCount, s.Average, s.MinScore, s.MaxScore})
	}
	if err := writeRows(f, SheetSubjects, rows); err != nil {
		return ExportResult{}, err
	}

	if _, err := f.NewSheet(SheetSummary); err != nil {
		return ExportResult{}, err
	}
	rows = [][]any{
		{"Students", summary.Students},
		{"Graded students", summary.GradedStudents},
		{"Grades", summary.Grades},
		{"Highest average", optionalFloat(summary.MaxAverage)},
		{"Lowest average", optionalFloat(summary.MinAverage)},
		{"Overall average", optionalFloat(summary.OverallAverage)},
	}
	if err := writeRows(f, SheetSummary, rows); err != nil {
		return ExportResult{}, err
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return ExportResult{}, fmt.Errorf("write workbook: %w", err)
	}
	return ExportResult{Students: len(students), Subjects: len(subjects)}, nil
}

// WriteFile renders the workbook to path, replacing any existing file.
func (e *ReportExporter) WriteFile(path string) (ExportResult, error) {
	out, err := os.Create(path)
	if err != nil {
		return ExportResult{}, fmt.Errorf("create %s: %w", path, err)
	}
	result, err := e.Write(out)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return result, err
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// optionalFloat leaves the cell empty for missing averages.
func optionalFloat(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
