package config

const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./books.db"

	DefaultPort = 8000
	DefaultHost = "127.0.0.1"

	// ServiceName is reported by the health endpoint
	ServiceName = "Book Collection API"
)
