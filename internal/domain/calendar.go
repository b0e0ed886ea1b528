package domain

import (
	"slices"
	"time"
)

// BusinessCalendar describes which days and hours count as working time.
type BusinessCalendar struct {
	StartHour   int
	EndHour     int
	WorkingDays []time.Weekday
}

// DefaultCalendar returns the Monday-Friday, 09:00-17:00 calendar.
func DefaultCalendar() BusinessCalendar {
	return BusinessCalendar{
		StartHour: 9,
		EndHour:   17,
		WorkingDays: []time.Weekday{
			time.Monday,
			time.Tuesday,
			time.Wednesday,
			time.Thursday,
			time.Friday,
		},
	}
}

// IsWorkingDay returns true if the calendar day of t is a working day.
// Time of day is ignored.
func (c BusinessCalendar) IsWorkingDay(t time.Time) bool {
	return slices.Contains(c.WorkingDays, t.Weekday())
}

// IsWorkingHour returns true if t falls on a working day and its hour is
// within [StartHour, EndHour]. The upper bound is inclusive, so 17:00-17:59
// is a working hour for the default calendar.
func (c BusinessCalendar) IsWorkingHour(t time.Time) bool {
	hour := t.Hour()
	return c.IsWorkingDay(t) && hour >= c.StartHour && hour <= c.EndHour
}

// HoursLeft returns the whole hours between t's hour and the end-of-day cutoff.
// Returns 0 once the cutoff hour has been reached.
func (c BusinessCalendar) HoursLeft(t time.Time) int {
	return max(0, c.EndHour-t.Hour())
}
