package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/students"
	http_controllers "github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/importers"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := cfg.ShutdownTimeout()

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill -9 can't be caught, so only SIGINT and SIGTERM are handled
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	// Close storage only after in-flight requests are drained
	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

// NewRouterConfig wires repositories over an already opened database.
func NewRouterConfig(cfg *config.Config, db *database.Database, version string) http_controllers.RouterConfig {
	bookRepo := books.NewRepository(db.DB)
	studentRepo := students.NewRepository(db.DB)

	return http_controllers.RouterConfig{
		Database:       db,
		Books:          bookRepo,
		Students:       studentRepo,
		Grades:         studentRepo,
		Reports:        studentRepo,
		Importer:       importers.NewPipeline(studentRepo),
		AuthConfig:     cfg.Auth,
		ReadOnly:       cfg.Access.ReadOnly,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Version:        version,
	}
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting %s v%s", config.ServiceName, version)

	switch cfg.Auth.Mode {
	case config.AuthModeToken:
		if cfg.Auth.TokenHash == "" {
			log.Printf("WARNING: AUTH_MODE=token but AUTH_TOKEN_HASH is empty, every write will be rejected. Generate one with the hash-token command.")
		} else {
			log.Printf("Authentication mode: token (writes require a bearer token)")
		}
	case config.AuthModeNone, "":
		log.Printf("Authentication mode: none")
	default:
		log.Fatalf("Unknown AUTH_MODE %q, expected none or token", cfg.Auth.Mode)
	}

	if cfg.Access.ReadOnly {
		log.Printf("Read-only mode enabled - write operations will be blocked")
	}

	db, err := database.NewDatabase(cfg.Database.Path, database.WithLogLevel(cfg.Database.LogLevel))
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	router := http_controllers.NewRouter(NewRouterConfig(cfg, db, version))

	Serve(router, cfg, func(ctx context.Context) {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	})
}
