package dto

import (
	"time"

	"github.com/mtlprog/turnaround/internal/domain"
)

// DueDateResponse represents a resolved due date.
type DueDateResponse struct {
	ID              string    `json:"id"`
	SubmittedAt     time.Time `json:"submitted_at"`
	TurnaroundHours int       `json:"turnaround_hours"`
	DueAt           time.Time `json:"due_at"`
	RolloverDays    int       `json:"rollover_days"`
}

// BatchItemResponse is one entry of a batch response. Exactly one of DueDate and Error is set.
type BatchItemResponse struct {
	Index   int              `json:"index"`
	ID      string           `json:"id,omitempty"`
	DueDate *DueDateResponse `json:"due_date,omitempty"`
	Error   *ErrorDetail     `json:"error,omitempty"`
}

// BatchDueDateResponse represents the response for POST /due-dates/batch.
type BatchDueDateResponse struct {
	Results   []BatchItemResponse `json:"results"`
	Total     int                 `json:"total"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
}

// WorkingTimeResponse represents the response for GET /working-time.
type WorkingTimeResponse struct {
	At            time.Time `json:"at"`
	IsWorkingDay  bool      `json:"is_working_day"`
	IsWorkingHour bool      `json:"is_working_hour"`
}

// NextWorkingDayResponse represents the response for POST /next-working-day.
type NextWorkingDayResponse struct {
	At             time.Time `json:"at"`
	OriginalMinute int       `json:"original_minute"`
	NextWorkingDay time.Time `json:"next_working_day"`
}

// CalendarResponse describes the business calendar.
type CalendarResponse struct {
	StartHour   int      `json:"start_hour"`
	EndHour     int      `json:"end_hour"`
	WorkingDays []string `json:"working_days"`
}

// ToDueDateResponse converts domain.DueDate to DueDateResponse.
func ToDueDateResponse(d *domain.DueDate) DueDateResponse {
	return DueDateResponse{
		ID:              d.ID,
		SubmittedAt:     d.SubmittedAt,
		TurnaroundHours: d.TurnaroundHours,
		DueAt:           d.DueAt,
		RolloverDays:    d.RolloverDays(),
	}
}

// ToWorkingTimeResponse converts domain.WorkingTime to WorkingTimeResponse.
func ToWorkingTimeResponse(wt domain.WorkingTime) WorkingTimeResponse {
	return WorkingTimeResponse{
		At:            wt.At,
		IsWorkingDay:  wt.IsWorkingDay,
		IsWorkingHour: wt.IsWorkingHour,
	}
}

// ToCalendarResponse converts domain.BusinessCalendar to CalendarResponse.
func ToCalendarResponse(cal domain.BusinessCalendar) CalendarResponse {
	days := make([]string, 0, len(cal.WorkingDays))
	for _, d := range cal.WorkingDays {
		days = append(days, d.String())
	}
	return CalendarResponse{
		StartHour:   cal.StartHour,
		EndHour:     cal.EndHour,
		WorkingDays: days,
	}
}
