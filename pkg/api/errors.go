package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caseops/inquest/pkg/investigation"
	"github.com/caseops/inquest/pkg/report"
	"github.com/caseops/inquest/pkg/services"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// abortWithError maps service-layer errors to HTTP error responses.
func abortWithError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	var transitionErr *investigation.InvalidTransitionError
	switch {
	case errors.As(err, &validErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: validErr.Error()})
	case errors.As(err, &transitionErr):
		c.AbortWithStatusJSON(http.StatusConflict, ErrorResponse{Error: transitionErr.Error()})
	case errors.Is(err, services.ErrNotFound), errors.Is(err, report.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: "resource not found"})
	case errors.Is(err, services.ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.AbortWithStatusJSON(http.StatusConflict, ErrorResponse{Error: "resource already exists"})
	case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, report.ErrNotTerminal):
		c.AbortWithStatusJSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, report.ErrVersionLimit):
		c.AbortWithStatusJSON(http.StatusConflict, ErrorResponse{Error: report.ErrVersionLimit.Error()})
	case errors.Is(err, report.ErrClosureLinked):
		c.AbortWithStatusJSON(http.StatusConflict, ErrorResponse{Error: "report is linked to case closure and cannot be deleted"})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
