package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type AuthMode string

const (
	AuthModeNone  AuthMode = "none"  // No authentication required (default)
	AuthModeToken AuthMode = "token" // Writes require a bearer token matching AUTH_TOKEN_HASH
)

type (
	Config struct {
		HTTP
		Global
		Database
		Auth
		Access
	}

	HTTP struct {
		Port int32
		Host string
		// Comma-separated list in CORS_ALLOWED_ORIGINS, "*" allows any origin
		AllowedOrigins []string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}

	Database struct {
		Path     string
		LogLevel string // silent, error, warn, info
	}

	Auth struct {
		Mode      AuthMode
		TokenHash string // bcrypt hash of the write token
	}

	Access struct {
		ReadOnly bool // Reject every write request with 403
	}
)

// ShutdownTimeout returns the graceful shutdown window.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Global.ShutdownTimeoutInSeconds) * time.Second
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", DefaultHost)
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_level", "warn")

	// Auth defaults
	v.SetDefault("auth_mode", "none")
	v.SetDefault("auth_token_hash", "")

	v.SetDefault("read_only", false)

	return &Config{
		HTTP: HTTP{
			Port:           v.GetInt32("PORT"),
			Host:           v.GetString("HOST"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:     v.GetString("DATABASE_PATH"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		Auth: Auth{
			Mode:      AuthMode(strings.ToLower(v.GetString("AUTH_MODE"))),
			TokenHash: v.GetString("AUTH_TOKEN_HASH"),
		},
		Access: Access{
			ReadOnly: v.GetBool("READ_ONLY"),
		},
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
