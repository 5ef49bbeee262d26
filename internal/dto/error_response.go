package dto

import (
	"time"

	apperrors "woz/internal/errors"
)

const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeTooManySessions = "TOO_MANY_SESSIONS"
	CodeInternal        = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	TraceID   string                       `json:"traceId"`
	Status    int                          `json:"status"`
	Code      string                       `json:"code"`
	Message   string                       `json:"message"`
	Details   []apperrors.ValidationDetail `json:"details,omitempty"`
	Timestamp time.Time                    `json:"timestamp"`
}

func NewErrorResponse(traceID string, status int, code, message string, details ...apperrors.ValidationDetail) ErrorResponse {
	return ErrorResponse{
		TraceID:   traceID,
		Status:    status,
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}
