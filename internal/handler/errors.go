package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"museum-review/internal/domain"
	"museum-review/internal/logger"
	"museum-review/internal/middleware"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondError maps domain errors onto HTTP status codes. Unexpected errors
// are logged with the request id and reported as a generic failure.
func respondError(c *gin.Context, err error, action string) {
	var (
		validation *domain.ValidationError
		stale      *domain.StaleStateError
		invalid    *domain.InvalidTransitionError
		extraction *domain.ExtractionError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: validation.Fields})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "your role cannot act on this stage"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.As(err, &stale):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "article was updated by another reviewer, reload and try again"})
	case errors.As(err, &invalid):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: invalid.Error()})
	case errors.As(err, &extraction):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "could not read text from " + extraction.Filename})
	default:
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to "+action, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to " + action})
	}
}
