package http

import (
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database
	Books    BookStore
	Students StudentStore
	Grades   GradeStore
	Reports  ReportStore
	Importer RosterImporter

	// Access control
	AuthConfig     config.Auth
	ReadOnly       bool
	AllowedOrigins []string

	// Application info
	Version string
}
