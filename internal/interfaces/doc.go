// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - BookStore: Book CRUD and search (internal/http/stores.go)
//   - StudentStore: Student CRUD and per-student grades (internal/http/stores.go)
//   - GradeStore: Grade CRUD and filtered listing (internal/http/stores.go)
//   - ReportStore: Aggregate gradebook reports (internal/http/stores.go)
//
// ## Import / Export Interfaces
//
//   - RosterStore: Transactional roster persistence (internal/importers/pipeline.go)
//   - RosterImporter: Spreadsheet upload handling (internal/http/stores.go)
//   - ReportSource: Report rows for spreadsheet export (internal/exporters/generic.go)
//
// # Adding a New Database Domain
//
// To add a new data domain (e.g., courses):
//
//  1. Create sub-package: internal/database/courses/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Declare the store interface next to its consumer in internal/http/
//
//  4. Add compile-time check in checks.go:
//
//     var _ http.CourseStore = (*courses.Repository)(nil)
//
//  5. Wire the repository in entrypoint.NewRouterConfig
//
// # Compile-Time Interface Checks
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
