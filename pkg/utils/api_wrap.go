package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string       `json:"status"`
	Code    int          `json:"code"`
	Message string       `json:"message,omitempty"`
	TraceID string       `json:"trace_id,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

// RespondSuccess writes data as the bare JSON body with 200.
func RespondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondMessage writes {"message": message} with 200.
func RespondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// RespondValidationError writes a 422 with one entry per offending field.
func RespondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, APIResponse{
		Status:  "error",
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation error",
		TraceID: traceID(c),
		Details: FieldErrors(err),
	})
}

// RespondFieldError writes a 422 about a single field.
func RespondFieldError(c *gin.Context, field, message string) {
	c.JSON(http.StatusUnprocessableEntity, APIResponse{
		Status:  "error",
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation error",
		TraceID: traceID(c),
		Details: []FieldError{{Field: field, Message: message}},
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var refErr *ReferenceNotFoundError

	switch {
	case errors.Is(err, ErrPOINotFound):
		RespondError(c, http.StatusNotFound, "POI not found")
	case errors.Is(err, ErrFloraNotFound):
		RespondError(c, http.StatusNotFound, "Flora not found")
	case errors.Is(err, ErrFaunaNotFound):
		RespondError(c, http.StatusNotFound, "Fauna not found")
	case errors.As(err, &refErr):
		RespondError(c, http.StatusNotFound, refErr.Error())
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidPagination):
		RespondValidationError(c, err)
	case errors.Is(err, ErrDatabaseConnection):
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, "Database connection error")
	default:
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}
