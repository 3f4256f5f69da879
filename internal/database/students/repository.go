// Package students stores the gradebook: students, their grades and the
// aggregate reports computed over them.
//
// Referential rules live in the schema. A grade for a missing student and the
// removal of a student who still has grades both fail with
// database.ErrConstraint; a second student with the same name (ignoring case)
// fails with database.ErrDuplicate.
package students

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateStudent validates and inserts a student.
func (r *Repository) CreateStudent(student *entities.Student) error {
	if err := student.Normalize(); err != nil {
		return err
	}
	student.ID = 0
	return database.TranslateError(r.db.Create(student).Error)
}

func (r *Repository) GetStudentByID(id uint) (*entities.Student, error) {
	var student entities.Student
	if err := r.db.First(&student, id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &student, nil
}

// ListStudents returns one page of students ordered by ID, plus the number of matches.
func (r *Repository) ListStudents(filter entities.StudentFilter, page database.Page) ([]entities.Student, int64, error) {
	query := database.WhereContains(r.db.Model(&entities.Student{}), "name", filter.Name)
	if filter.BirthYearFrom != nil {
		query = query.Where("birth_year >= ?", *filter.BirthYearFrom)
	}
	if filter.BirthYearTo != nil {
		query = query.Where("birth_year <= ?", *filter.BirthYearTo)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count students: %w", err)
	}

	students := make([]entities.Student, 0, page.Size)
	if total == 0 {
		return students, 0, nil
	}
	if err := query.Scopes(database.Paginate(page)).Order("id ASC").Find(&students).Error; err != nil {
		return nil, 0, fmt.Errorf("find students: %w", err)
	}
	return students, total, nil
}

// UpdateStudent changes only the supplied fields and returns the stored student.
func (r *Repository) UpdateStudent(id uint, patch entities.StudentPatch) (*entities.Student, error) {
	if patch.IsEmpty() {
		return r.GetStudentByID(id)
	}
	columns, err := patch.Columns()
	if err != nil {
		return nil, err
	}
	if err := r.updateColumns(&entities.Student{}, id, columns); err != nil {
		return nil, err
	}
	return r.GetStudentByID(id)
}

// DeleteStudent removes a student that has no grades.
func (r *Repository) DeleteStudent(id uint) error {
	return r.deleteByID(&entities.Student{}, id)
}

// CreateGrade validates and inserts a grade for an existing student.
func (r *Repository) CreateGrade(grade *entities.Grade) error {
	if err := grade.Normalize(); err != nil {
		return err
	}
	grade.ID = 0
	return database.TranslateError(r.db.Create(grade).Error)
}

func (r *Repository) GetGradeByID(id uint) (*entities.Grade, error) {
	var grade entities.Grade
	if err := r.db.First(&grade, id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &grade, nil
}

// ListGrades returns one page of grades ordered by ID, plus the number of matches.
func (r *Repository) ListGrades(filter entities.GradeFilter, page database.Page) ([]entities.Grade, int64, error) {
	query := r.db.Model(&entities.Grade{})
	if filter.StudentID != 0 {
		query = query.Where("student_id = ?", filter.StudentID)
	}
	if filter.Subject != "" {
		query = query.Where("subject = ?", filter.Subject)
	}
	if filter.MinScore != nil {
		query = query.Where("score >= ?", *filter.MinScore)
	}
	if filter.MaxScore != nil {
		query = query.Where("score <= ?", *filter.MaxScore)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count grades: %w", err)
	}

	grades := make([]entities.Grade, 0, page.Size)
	if total == 0 {
		return grades, 0, nil
	}
	if err := query.Scopes(database.Paginate(page)).Order("id ASC").Find(&grades).Error; err != nil {
		return nil, 0, fmt.Errorf("find grades: %w", err)
	}
	return grades, total, nil
}

// ListStudentGrades returns every grade of one student, oldest first.
func (r *Repository) ListStudentGrades(studentID uint) ([]entities.Grade, error) {
	if _, err := r.GetStudentByID(studentID); err != nil {
		return nil, err
	}
	grades := make([]entities.Grade, 0)
	if err := r.db.Where("student_id = ?", studentID).Order("id ASC").Find(&grades).Error; err != nil {
		return nil, fmt.Errorf("find grades for student %d: %w", studentID, err)
	}
	return grades, nil
}

func (r *Repository) UpdateGrade(id uint, patch entities.GradePatch) (*entities.Grade, error) {
	if patch.IsEmpty() {
		return r.GetGradeByID(id)
	}
	columns, err := patch.Columns()
	if err != nil {
		return nil, err
	}
	if err := r.updateColumns(&entities.Grade{}, id, columns); err != nil {
		return nil, err
	}
	return r.GetGradeByID(id)
}

func (r *Repository) DeleteGrade(id uint) error {
	return r.deleteByID(&entities.Grade{}, id)
}

func (r *Repository) updateColumns(model any, id uint, columns map[string]any) error {
	result := r.db.Model(model).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return database.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *Repository) deleteByID(model any, id uint) error {
	result := r.db.Delete(model, id)
	if result.Error != nil {
		return database.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}
