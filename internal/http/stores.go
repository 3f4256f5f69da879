package http

import (
	"io"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// This file consolidates the store interfaces used by HTTP controllers.
// Each controller depends only on the methods it calls.

// BookStore is implemented by books.Repository.
type BookStore interface {
	GetBookByID(id uint) (*entities.Book, error)
	ListBooks(page database.Page) ([]entities.Book, int64, error)
	SearchBooks(filter entities.BookFilter, page database.Page) ([]entities.Book, int64, error)
	CreateBook(book *entities.Book) error
	UpdateBook(id uint, patch entities.BookPatch) (*entities.Book, error)
	DeleteBook(id uint) error
}

// StudentStore is implemented by students.Repository.
type StudentStore interface {
	CreateStudent(student *entities.Student) error
	GetStudentByID(id uint) (*entities.Student, error)
	ListStudents(filter entities.StudentFilter, page database.Page) ([]entities.Student, int64, error)
	UpdateStudent(id uint, patch entities.StudentPatch) (*entities.Student, error)
	DeleteStudent(id uint) error
	ListStudentGrades(studentID uint) ([]entities.Grade, error)
}

// GradeStore is implemented by students.Repository.
type GradeStore interface {
	CreateGrade(grade *entities.Grade) error
	GetGradeByID(id uint) (*entities.Grade, error)
	ListGrades(filter entities.GradeFilter, page database.Page) ([]entities.Grade, int64, error)
	UpdateGrade(id uint, patch entities.GradePatch) (*entities.Grade, error)
	DeleteGrade(id uint) error
}

// ReportStore is implemented by students.Repository.
type ReportStore interface {
	StudentAverages() ([]entities.StudentAverage, error)
	SubjectAverages() ([]entities.SubjectAverage, error)
	TopStudents(limit int) ([]entities.StudentAverage, error)
	StudentsBelow(threshold int) ([]entities.StudentAverage, error)
	Summary() (*entities.GradebookSummary, error)
}

// RosterImporter is implemented by importers.Pipeline.
type RosterImporter interface {
	Import(r io.Reader) (*entities.ImportResult, error)
}
