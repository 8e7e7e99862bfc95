package handlers

import (
	"errors"
	"net/http"

	"ibrac/internal/domain"
	"ibrac/internal/http/middleware"
	"ibrac/internal/pagination"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain and pagination errors to HTTP responses.
// Domain errors win over the FetchError that may wrap them.
func RespondDomainError(c *gin.Context, err error) {
	var verr domain.ValidationError
	switch {
	case errors.As(err, &verr):
		var details any
		if verr.Field != "" {
			details = gin.H{"field": verr.Field}
		}
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), details)
	case errors.Is(err, pagination.ErrInvalidDescriptor), errors.Is(err, pagination.ErrInvalidWindow):
		respondError(c, http.StatusBadRequest, "invalid_query", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
	case domain.IsForbidden(err):
		respondError(c, http.StatusForbidden, "forbidden", err.Error(), nil)
	case domain.IsInternal(err):
		var ierr domain.InternalError
		errors.As(err, &ierr)
		logFailure(c, err)
		respondError(c, http.StatusInternalServerError, "internal_error", ierr.Error(), nil)
	case pagination.IsFetchError(err):
		logFailure(c, err)
		respondError(c, http.StatusServiceUnavailable, "data_source_unavailable", "falha ao consultar os dados", nil)
	default:
		logFailure(c, err)
		respondError(c, http.StatusInternalServerError, "internal_error", "erro interno", nil)
	}
}

func logFailure(c *gin.Context, err error) {
	_ = c.Error(err)
	log.Error().Err(err).
		Str("request_id", middleware.GetRequestID(c)).
		Str("path", c.Request.URL.Path).
		Msg("request failed")
}
