package dto

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mtlprog/turnaround/internal/domain"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse creates a new error response.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// MapDomainError maps domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code string, message string) {
	message = err.Error()

	switch {
	// Calculation errors
	case errors.Is(err, domain.ErrInvalidSubmitTime):
		return http.StatusUnprocessableEntity, "INVALID_SUBMIT_TIME", message
	case errors.Is(err, domain.ErrInvalidTurnaround):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, domain.ErrInvalidMinute):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message

	// Input errors
	case errors.Is(err, domain.ErrInvalidTimestamp):
		return http.StatusBadRequest, "INVALID_TIMESTAMP", message
	case errors.Is(err, domain.ErrMissingTimestamp):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, domain.ErrMissingTurnaround):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message

	// Batch errors
	case errors.Is(err, domain.ErrEmptyBatch):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, domain.ErrBatchTooLarge):
		return http.StatusRequestEntityTooLarge, "BATCH_TOO_LARGE", message

	// Request lifecycle
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout, "REQUEST_CANCELLED", message

	default:
		slog.Error("unmapped domain error returned to client",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
		)
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
	}
}

// ToErrorDetail converts an error to an inline ErrorDetail for batch items.
func ToErrorDetail(err error) *ErrorDetail {
	_, code, message := MapDomainError(err)
	return &ErrorDetail{Code: code, Message: message}
}
