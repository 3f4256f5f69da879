package students

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// ImportRoster stores a spreadsheet roster in a single transaction. Students are
// matched by name ignoring case and created on first sight; every row with a
// subject adds one grade. Any invalid row rolls back the whole import.
func (r *Repository) ImportRoster(rows []entities.RosterRow) (*entities.ImportResult, error) {
	result := &entities.ImportResult{Rows: len(rows)}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := NewRepository(tx)
		for _, row := range rows {
			student, created, err := txRepo.findOrCreateStudent(row)
			if err != nil {
				return rowError(row.Line, err)
			}
			if created {
				result.StudentsCreated++
			}

			if strings.TrimSpace(row.Subject) == "" && row.Score == nil {
				continue
			}
			grade := &entities.Grade{StudentID: student.ID, Subject: row.Subject}
			if row.Score != nil {
				grade.Score = *row.Score
			}
			if err := txRepo.CreateGrade(grade); err != nil {
				return rowError(row.Line, err)
			}
			result.GradesCreated++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repository) findOrCreateStudent(row entities.RosterRow) (*entities.Student, bool, error) {
	name := strings.TrimSpace(row.Name)

	var existing entities.Student
	err := r.db.Where("name = ? COLLATE NOCASE", name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	student := &entities.Student{Name: name, BirthYear: row.BirthYear}
	if err := r.CreateStudent(student); err != nil {
		return nil, false, err
	}
	return student, true, nil
}

// rowError prefixes validation fields with the spreadsheet line they came from.
func rowError(line int, err error) error {
	var verr *entities.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("row %d: %w", line, database.TranslateError(err))
	}
	prefixed := &entities.ValidationError{}
	for field, msg := range verr.Fields {
		prefixed.Add(fmt.Sprintf("row %d: %s", line, field), msg)
	}
	return prefixed
}
