package domain

import "time"

// DueDateRequest is a single submission to resolve into a due date.
type DueDateRequest struct {
	ID              string
	SubmittedAt     time.Time
	TurnaroundHours int
}

// DueDate is the resolved due date for a submission.
type DueDate struct {
	ID              string
	SubmittedAt     time.Time
	TurnaroundHours int
	DueAt           time.Time
}

// RolloverDays returns the number of calendar days between submission and due date.
func (d *DueDate) RolloverDays() int {
	return CalendarDaysBetween(d.SubmittedAt, d.DueAt)
}

// DueDateResult pairs a request with either its due date or the error that prevented it.
type DueDateResult struct {
	Request DueDateRequest
	DueDate *DueDate
	Err     error
}

// WorkingTime describes how a moment relates to the business calendar.
type WorkingTime struct {
	At            time.Time
	IsWorkingDay  bool
	IsWorkingHour bool
}

// CalendarDaysBetween counts date boundaries crossed from a to b, in a's location.
func CalendarDaysBetween(a, b time.Time) int {
	b = b.In(a.Location())
	start := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
