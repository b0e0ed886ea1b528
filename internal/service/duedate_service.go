package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mtlprog/turnaround/internal/domain"
	"github.com/mtlprog/turnaround/internal/duedate"
	"github.com/mtlprog/turnaround/internal/metrics"
)

// DueDateService coordinates due date calculations against a business calendar.
type DueDateService struct {
	calendar  domain.BusinessCalendar
	validator *Validator
}

// NewDueDateService creates a new DueDateService.
func NewDueDateService(calendar domain.BusinessCalendar, maxBatchSize int) *DueDateService {
	return &DueDateService{
		calendar:  calendar,
		validator: NewValidator(calendar, maxBatchSize),
	}
}

// Calendar returns the business calendar used by the service.
func (s *DueDateService) Calendar() domain.BusinessCalendar {
	return s.calendar
}

// Calculate resolves the due date for a single submission.
// Requests without an ID get a generated one.
func (s *DueDateService) Calculate(ctx context.Context, req domain.DueDateRequest) (*domain.DueDate, error) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	if err := s.validator.ValidateRequest(req); err != nil {
		s.reject(ctx, req, err)
		return nil, err
	}

	dueAt, err := duedate.CalculateDueDate(s.calendar, req.SubmittedAt, req.TurnaroundHours)
	if err != nil {
		s.reject(ctx, req, err)
		return nil, err
	}

	dueDate := &domain.DueDate{
		ID:              req.ID,
		SubmittedAt:     req.SubmittedAt,
		TurnaroundHours: req.TurnaroundHours,
		DueAt:           dueAt,
	}

	rollover := dueDate.RolloverDays()
	metrics.ObserveCalculation(req.TurnaroundHours, rollover)

	slog.DebugContext(ctx, "due date calculated",
		"submission_id", req.ID,
		"submitted_at", req.SubmittedAt,
		"turnaround_hours", req.TurnaroundHours,
		"due_at", dueAt,
		"rollover_days", rollover,
	)

	return dueDate, nil
}

// CalculateBatch resolves every request independently; one failing request
// does not affect the others. Stops early if ctx is cancelled, marking the
// remaining requests with the context error.
func (s *DueDateService) CalculateBatch(ctx context.Context, reqs []domain.DueDateRequest) ([]domain.DueDateResult, error) {
	if err := s.validator.ValidateBatch(reqs); err != nil {
		return nil, err
	}

	metrics.ObserveBatch(len(reqs))

	results := make([]domain.DueDateResult, len(reqs))
	failed := 0
	for i, req := range reqs {
		results[i].Request = req

		if err := ctx.Err(); err != nil {
			results[i].Err = fmt.Errorf("batch cancelled: %w", err)
			failed++
			continue
		}

		dueDate, err := s.Calculate(ctx, req)
		if err != nil {
			results[i].Err = err
			failed++
			continue
		}
		results[i].Request.ID = dueDate.ID
		results[i].DueDate = dueDate
	}

	slog.InfoContext(ctx, "batch calculated",
		"submissions", len(reqs),
		"failed", failed,
	)

	return results, nil
}

// NextWorkingDay returns the start of the next working day after t, keeping originalMinute.
func (s *DueDateService) NextWorkingDay(t time.Time, originalMinute int) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, domain.ErrMissingTimestamp
	}
	if err := s.validator.ValidateMinute(originalMinute); err != nil {
		return time.Time{}, err
	}
	return duedate.AdvanceToNextWorkingDay(s.calendar, t, originalMinute), nil
}

// Inspect reports whether t is a working day and a working hour.
func (s *DueDateService) Inspect(t time.Time) domain.WorkingTime {
	return domain.WorkingTime{
		At:            t,
		IsWorkingDay:  s.calendar.IsWorkingDay(t),
		IsWorkingHour: s.calendar.IsWorkingHour(t),
	}
}

// reject logs and counts a failed calculation.
func (s *DueDateService) reject(ctx context.Context, req domain.DueDateRequest, err error) {
	metrics.IncRejected(rejectionOutcome(err))

	slog.WarnContext(ctx, "due date rejected",
		"submission_id", req.ID,
		"submitted_at", req.SubmittedAt,
		"turnaround_hours", req.TurnaroundHours,
		"error", err,
	)
}

func rejectionOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidSubmitTime):
		return metrics.OutcomeInvalidSubmitTime
	case errors.Is(err, domain.ErrInvalidTurnaround):
		return metrics.OutcomeInvalidTurnaround
	default:
		return metrics.OutcomeInvalidRequest
	}
}
