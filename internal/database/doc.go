// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, foreign keys, migrations
//	├── schema.go        # Gradebook tables, constraints and indexes
//	├── errors.go        # Sentinel errors and SQLite error translation
//	├── pagination.go    # Page requests and the Paginate scope
//	├── books/           # Book CRUD and search
//	└── students/        # Students, grades and aggregate reports
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase("./books.db")
//
//	booksRepo := books.NewRepository(db.DB)
//	studentsRepo := students.NewRepository(db.DB)
//
//	book, err := booksRepo.GetBookByID(123)
//	if errors.Is(err, database.ErrNotFound) { ... }
//
// Every repository method is a single statement (reports are a single
// aggregate query); none of them keeps state between calls.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Translate errors with database.TranslateError
//  5. Add compile-time interface check in internal/interfaces/checks.go
package database
