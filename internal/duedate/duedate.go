// Package duedate adds working hours to a submission time under a business calendar.
package duedate

import (
	"time"

	"github.com/mtlprog/turnaround/internal/domain"
)

// CalculateDueDate adds turnaroundHours working hours to submittedAt.
// The submission must itself be a working hour. Hours are consumed up to the
// calendar's end-of-day cutoff, then the remainder rolls over to the next
// working day at StartHour with the submission's minute.
func CalculateDueDate(cal domain.BusinessCalendar, submittedAt time.Time, turnaroundHours int) (time.Time, error) {
	if !cal.IsWorkingHour(submittedAt) {
		return time.Time{}, domain.ErrInvalidSubmitTime
	}
	if turnaroundHours < 0 {
		return time.Time{}, domain.ErrInvalidTurnaround
	}
	if turnaroundHours > 0 && cal.EndHour <= cal.StartHour {
		return time.Time{}, domain.ErrInvalidCalendar
	}

	due := submittedAt
	originalMinute := submittedAt.Minute()
	remaining := turnaroundHours

	for remaining > 0 {
		consume := min(remaining, cal.HoursLeft(due))
		due = addWallClockHours(due, consume)
		remaining -= consume

		if remaining > 0 {
			due = AdvanceToNextWorkingDay(cal, due, originalMinute)
		}
	}

	return due, nil
}

// AdvanceToNextWorkingDay moves t forward one calendar day at a time, with the
// clock set to StartHour:originalMinute:00, until it lands on a working day.
func AdvanceToNextWorkingDay(cal domain.BusinessCalendar, t time.Time, originalMinute int) time.Time {
	next := t
	// A calendar without working days gives up after a full week.
	for range 7 {
		next = time.Date(next.Year(), next.Month(), next.Day()+1, cal.StartHour, originalMinute, 0, 0, next.Location())
		if cal.IsWorkingDay(next) {
			break
		}
	}
	return next
}

// addWallClockHours shifts the hour field, keeping the wall clock intact across DST changes.
func addWallClockHours(t time.Time, hours int) time.Time {
	if hours == 0 {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour()+hours, t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
