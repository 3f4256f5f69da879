package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/auth"
	"github.com/mrlokans/bookshelf/internal/readonly"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Stores left nil in cfg leave their endpoints unregistered.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	// CORS runs before access control so preflight requests are answered
	router.Use(CORSMiddleware(cfg.AllowedOrigins))

	router.Use(readonly.NewMiddleware(cfg.ReadOnly).Handler())
	router.Use(auth.NewMiddleware(cfg.AuthConfig).Handler())

	// Health endpoints
	health := NewHealthController(cfg.Database, cfg.Version, cfg.ReadOnly)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Book collection, served under both its historical and REST-style prefix
	if cfg.Books != nil {
		booksController := NewBooksController(cfg.Books)
		for _, prefix := range []string{"/items", "/books"} {
			booksController.RegisterRoutes(router.Group(prefix))
		}
	}

	// Gradebook
	if cfg.Students != nil {
		NewStudentsController(cfg.Students, cfg.Importer).RegisterRoutes(router.Group("/students"))
	}
	if cfg.Grades != nil {
		NewGradesController(cfg.Grades).RegisterRoutes(router.Group("/grades"))
	}
	if cfg.Reports != nil {
		NewReportsController(cfg.Reports).RegisterRoutes(router.Group("/reports"))
	}

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "Route "+c.Request.URL.Path+" not found")
	})

	return router
}
