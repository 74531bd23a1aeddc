package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookshelf/internal/database"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"` // field-level validation errors
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Error Response Helpers ---

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

func respondConflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorResponse{Error: message})
}

// respondValidationErrors sends the field-keyed error map so callers
// can reflect each message onto its form field.
func respondValidationErrors(c *gin.Context, errs validation.Errors) {
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: errs,
	})
}

// respondInternalError logs the error and hides it from the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondStoreError maps a repository error onto the matching status
// code; anything unrecognized is a backing-store failure.
func respondStoreError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, database.ErrBookNotFound):
		respondNotFound(c, "book")
	case errors.Is(err, database.ErrGenreNotFound):
		respondNotFound(c, "genre")
	case errors.Is(err, database.ErrDuplicateGenreName):
		respondConflict(c, database.ErrDuplicateGenreName.Error())
	case errors.Is(err, database.ErrGenreInUse):
		respondConflict(c, database.ErrGenreInUse.Error())
	case errors.Is(err, database.ErrInvalidGenreReference):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: validation.Errors{"genre_id": database.ErrInvalidGenreReference},
		})
	default:
		respondInternalError(c, err, context)
	}
}

// --- Success Response Helpers ---

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// --- Request Parsing ---

// bindFieldMap reads the request body into the raw string field map the
// forms package validates. JSON bodies may carry numbers and booleans,
// which are stringified; form-encoded bodies are passed through as-is.
// JSON null becomes a present-but-empty field, which is how a genre
// association gets cleared.
func bindFieldMap(c *gin.Context) (map[string]string, bool) {
	form := make(map[string]string)

	if strings.HasPrefix(c.ContentType(), "application/json") {
		var raw map[string]any
		if err := c.ShouldBindJSON(&raw); err != nil {
			respondBadRequest(c, "invalid request body")
			return nil, false
		}
		for key, value := range raw {
			switch v := value.(type) {
			case nil:
				form[key] = ""
			case string:
				form[key] = v
			case bool:
				form[key] = strconv.FormatBool(v)
			case float64:
				form[key] = strconv.FormatFloat(v, 'f', -1, 64)
			default:
				respondBadRequest(c, "invalid value for field "+key)
				return nil, false
			}
		}
		return form, true
	}

	if err := c.Request.ParseForm(); err != nil {
		respondBadRequest(c, "invalid form data")
		return nil, false
	}
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			form[key] = values[0]
		}
	}
	return form, true
}
