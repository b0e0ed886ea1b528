package domain

import "errors"

// Domain-specific errors for due date calculation.
var (
	// Calculation errors
	ErrInvalidSubmitTime = errors.New("Invalid submit time. Submissions must be made between 9 AM and 5 PM on weekdays.") //nolint:staticcheck // message is part of the public contract
	ErrInvalidTurnaround = errors.New("turnaround hours must not be negative")
	ErrInvalidMinute     = errors.New("original minute must be between 0 and 59")
	ErrInvalidCalendar   = errors.New("calendar end hour must be after start hour")

	// Input errors
	ErrInvalidTimestamp  = errors.New("invalid timestamp")
	ErrMissingTimestamp  = errors.New("timestamp is required")
	ErrMissingTurnaround = errors.New("turnaround_hours is required")

	// Batch errors
	ErrEmptyBatch    = errors.New("batch has no submissions")
	ErrBatchTooLarge = errors.New("batch exceeds maximum size")
)
