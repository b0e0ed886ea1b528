// Package turnaround calculates due dates in working hours.
//
// Working time is Monday to Friday, 09:00 to 17:00, evaluated on the wall
// clock of the timestamp's own location. A submission must be made during a
// working hour; 17:00-17:59 counts as a valid submission moment but leaves no
// capacity that day, so any remaining turnaround starts on the next working day.
package turnaround

import (
	"time"

	"github.com/mtlprog/turnaround/internal/domain"
	"github.com/mtlprog/turnaround/internal/duedate"
)

var (
	// ErrInvalidSubmitTime is returned when the submission is outside working hours.
	ErrInvalidSubmitTime = domain.ErrInvalidSubmitTime

	// ErrInvalidTurnaround is returned for negative turnaround hours.
	ErrInvalidTurnaround = domain.ErrInvalidTurnaround
)

// CalculateDueDate returns submittedAt plus turnaroundHours working hours.
// When a day's hours run out, the remainder continues at 09:00 on the next
// working day, keeping the submission's minute and dropping seconds.
func CalculateDueDate(submittedAt time.Time, turnaroundHours int) (time.Time, error) {
	return duedate.CalculateDueDate(domain.DefaultCalendar(), submittedAt, turnaroundHours)
}

// IsWorkingDay reports whether t falls on Monday to Friday.
func IsWorkingDay(t time.Time) bool {
	return domain.DefaultCalendar().IsWorkingDay(t)
}

// IsWorkingHour reports whether t falls on a working day with an hour in [9, 17].
func IsWorkingHour(t time.Time) bool {
	return domain.DefaultCalendar().IsWorkingHour(t)
}

// AdvanceToNextWorkingDay returns 09:originalMinute on the first working day after t.
func AdvanceToNextWorkingDay(t time.Time, originalMinute int) time.Time {
	return duedate.AdvanceToNextWorkingDay(domain.DefaultCalendar(), t, originalMinute)
}
