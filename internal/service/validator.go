package service

import (
	"fmt"

	"github.com/mtlprog/turnaround/internal/config"
	"github.com/mtlprog/turnaround/internal/domain"
)

// Validator handles input validation for due date operations.
type Validator struct {
	calendar     domain.BusinessCalendar
	maxBatchSize int
}

// NewValidator creates a new Validator. A non-positive maxBatchSize uses config.DefaultMaxBatchSize.
func NewValidator(calendar domain.BusinessCalendar, maxBatchSize int) *Validator {
	if maxBatchSize <= 0 {
		maxBatchSize = config.DefaultMaxBatchSize
	}
	return &Validator{
		calendar:     calendar,
		maxBatchSize: maxBatchSize,
	}
}

// ValidateRequest checks a due date request before calculation.
func (v *Validator) ValidateRequest(req domain.DueDateRequest) error {
	if req.SubmittedAt.IsZero() {
		return fmt.Errorf("%w: submission %s has no submitted_at", domain.ErrMissingTimestamp, req.ID)
	}

	// Checked before turnaround so an out-of-hours submission always reports the same error.
	if !v.calendar.IsWorkingHour(req.SubmittedAt) {
		return domain.ErrInvalidSubmitTime
	}

	if req.TurnaroundHours < 0 {
		return fmt.Errorf("%w: submission %s has %d hours", domain.ErrInvalidTurnaround, req.ID, req.TurnaroundHours)
	}

	return nil
}

// ValidateMinute checks that minute is a valid minute of the hour.
func (v *Validator) ValidateMinute(minute int) error {
	if minute < 0 || minute > 59 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidMinute, minute)
	}
	return nil
}

// ValidateBatch checks the size of a batch.
func (v *Validator) ValidateBatch(reqs []domain.DueDateRequest) error {
	if len(reqs) == 0 {
		return domain.ErrEmptyBatch
	}
	if len(reqs) > v.maxBatchSize {
		return fmt.Errorf("%w: %d submissions, limit is %d", domain.ErrBatchTooLarge, len(reqs), v.maxBatchSize)
	}
	return nil
}
