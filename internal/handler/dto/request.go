package dto

// DueDateRequest represents the request body for POST /due-dates.
type DueDateRequest struct {
	ID              string `json:"id,omitempty"`
	SubmittedAt     string `json:"submitted_at"`
	TurnaroundHours *int   `json:"turnaround_hours"`
}

// BatchDueDateRequest represents the request body for POST /due-dates/batch.
type BatchDueDateRequest struct {
	Submissions []DueDateRequest `json:"submissions"`
}

// NextWorkingDayRequest represents the request body for POST /next-working-day.
// OriginalMinute defaults to the minute of At.
type NextWorkingDayRequest struct {
	At             string `json:"at"`
	OriginalMinute *int   `json:"original_minute,omitempty"`
}
