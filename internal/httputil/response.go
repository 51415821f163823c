// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/danilo/sellora-commerce/internal/errors"
)

// ErrorResponse is the standard error body returned by every endpoint.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
}

// newErrorResponse builds an ErrorResponse stamped with the current time.
func newErrorResponse(status int, errorCode, message string) ErrorResponse {
	return ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     errorCode,
		Message:   message,
	}
}

// HandleErrorGin maps domain errors to HTTP status codes and returns a JSON response.
// Not-found errors become 404, validation errors 400, duplicate-key conflicts 409.
// Anything else is a 500 whose details are logged server-side and never sent to
// the client.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var response ErrorResponse

	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		response = newErrorResponse(http.StatusNotFound, "not_found", err.Error())

	case apperrors.Is(err, apperrors.ErrInvalidInput):
		response = newErrorResponse(http.StatusBadRequest, "validation_error", err.Error())

	case apperrors.Is(err, apperrors.ErrConflict):
		response = newErrorResponse(http.StatusConflict, "conflict", err.Error())

	default:
		response = newErrorResponse(
			http.StatusInternalServerError,
			"internal_error",
			"An internal error occurred",
		)
	}

	// Log the full error details (including wrapped errors)
	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", response.Status),
			slog.String("error_code", response.Error),
			slog.Any("error", err),
		)
	}

	c.JSON(response.Status, response)
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON or parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	response := newErrorResponse(http.StatusBadRequest, "bad_request", err.Error())
	c.JSON(response.Status, response)
}

// HandleValidationErrorGin writes a 400 response for request validation failures.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	response := newErrorResponse(http.StatusBadRequest, "validation_error", err.Error())
	c.JSON(response.Status, response)
}
