package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/entities"
)

func init() {
	// Report binding problems under the names clients send, not Go field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"form", "json"} {
				name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return field.Name
		})
	}
}

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"` // per-field validation messages
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondValidationError sends a 400 with one message per offending field.
func respondValidationError(c *gin.Context, verr *entities.ValidationError) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: verr.Fields})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s) [request %s]: %v", context, RequestID(c), err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondError sends an error response with the given status code.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// respondStoreError maps repository errors onto HTTP statuses. notFound is the
// message used for 404s, context labels the log line for 500s.
func respondStoreError(c *gin.Context, err error, notFound, context string) {
	var verr *entities.ValidationError
	switch {
	case errors.As(err, &verr):
		respondValidationError(c, verr)
	case errors.Is(err, database.ErrNotFound):
		respondError(c, http.StatusNotFound, notFound)
	case errors.Is(err, database.ErrDuplicate), errors.Is(err, database.ErrConstraint):
		respondError(c, http.StatusConflict, err.Error())
	default:
		respondInternalError(c, err, context)
	}
}

// respondBindingError turns gin binding failures into 400 responses.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		respondValidationError(c, translateValidationErrors(verrs))
		return
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		respondBadRequest(c, fmt.Sprintf("invalid number %q", numErr.Num))
		return
	}
	respondBadRequest(c, "invalid request: "+err.Error())
}

func translateValidationErrors(verrs validator.ValidationErrors) *entities.ValidationError {
	out := &entities.ValidationError{}
	for _, fe := range verrs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "min":
			msg = "must be at least " + fe.Param()
		case "max":
			msg = "must be at most " + fe.Param()
		default:
			msg = "is invalid"
		}
		out.Add(fe.Field(), msg)
	}
	return out
}

// --- Success Response Helpers ---

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// paginated wraps one page of items under key together with paging metadata.
func paginated(key string, items any, total int64, page database.Page) gin.H {
	return gin.H{
		key:           items,
		"total":       total,
		"page":        page.Number,
		"page_size":   page.Size,
		"total_pages": database.TotalPages(total, page.Size),
	}
}

// --- Parameter Parsing ---

// PageQuery is embedded by every paginated listing.
type PageQuery struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"page_size,default=10" binding:"min=1,max=100"`
}

func (q PageQuery) page() database.Page {
	return database.NewPage(q.Page, q.PageSize)
}

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}
