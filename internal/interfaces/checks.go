package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/students"
	"github.com/mrlokans/bookshelf/internal/exporters"
	"github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/importers"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ http.BookStore = (*books.Repository)(nil)

// One repository serves students, grades and the aggregate reports
var _ http.StudentStore = (*students.Repository)(nil)
var _ http.GradeStore = (*students.Repository)(nil)
var _ http.ReportStore = (*students.Repository)(nil)

// =============================================================================
// Import / Export
// =============================================================================

var _ importers.RosterStore = (*students.Repository)(nil)
var _ http.RosterImporter = (*importers.Pipeline)(nil)

var _ exporters.ReportSource = (*students.Repository)(nil)
