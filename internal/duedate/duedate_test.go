package duedate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mtlprog/turnaround/internal/domain"
	"github.com/mtlprog/turnaround/internal/duedate"
)

// DueDateTestSuite covers the working-hours arithmetic.
type DueDateTestSuite struct {
	suite.Suite
	cal domain.BusinessCalendar
}

func TestDueDateSuite(t *testing.T) {
	suite.Run(t, new(DueDateTestSuite))
}

func (s *DueDateTestSuite) SetupTest() {
	s.cal = domain.DefaultCalendar()
}

// at builds a July 2024 timestamp. July 8 2024 is a Monday.
func at(day, hour, minute int) time.Time {
	return time.Date(2024, 7, day, hour, minute, 0, 0, time.UTC)
}

func (s *DueDateTestSuite) TestCalculateDueDate_Scenarios() {
	tests := []struct {
		name       string
		submitted  time.Time
		turnaround int
		want       time.Time
	}{
		{"within the same day", at(9, 10, 0), 4, at(9, 14, 0)},
		{"spanning multiple days", at(11, 15, 0), 10, at(12, 17, 0)},
		{"including a weekend", at(12, 13, 0), 20, at(16, 17, 0)},
		{"end of workday with minutes", at(12, 16, 59), 2, at(15, 10, 59)},
		{"full working day", at(8, 9, 0), 8, at(8, 17, 0)},
		{"more than a working week", at(8, 9, 0), 56, at(16, 17, 0)},
		{"exactly five working days", at(8, 9, 0), 40, at(12, 17, 0)},
		{"submitted at the friday cutoff", at(12, 17, 0), 1, at(15, 10, 0)},
		{"wednesday morning into thursday", at(10, 11, 15), 10, at(11, 13, 15)},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := duedate.CalculateDueDate(s.cal, tt.submitted, tt.turnaround)
			s.Require().NoError(err)
			s.Equal(tt.want, got)
		})
	}
}

func (s *DueDateTestSuite) TestCalculateDueDate_ZeroTurnaroundReturnsSubmission() {
	submitted := time.Date(2024, 7, 10, 14, 23, 45, 678_000_000, time.UTC)

	got, err := duedate.CalculateDueDate(s.cal, submitted, 0)
	s.Require().NoError(err)
	s.Equal(submitted, got)
}

func (s *DueDateTestSuite) TestCalculateDueDate_SameDayKeepsSecondsAndMillis() {
	submitted := time.Date(2024, 7, 9, 10, 30, 15, 250_000_000, time.UTC)

	got, err := duedate.CalculateDueDate(s.cal, submitted, 3)
	s.Require().NoError(err)
	s.Equal(time.Date(2024, 7, 9, 13, 30, 15, 250_000_000, time.UTC), got)
}

func (s *DueDateTestSuite) TestCalculateDueDate_RolloverResetsSecondsAndMillis() {
	submitted := time.Date(2024, 7, 9, 16, 42, 15, 250_000_000, time.UTC)

	got, err := duedate.CalculateDueDate(s.cal, submitted, 3)
	s.Require().NoError(err)
	s.Equal(time.Date(2024, 7, 10, 11, 42, 0, 0, time.UTC), got)
}

// Hour 17 passes validation but leaves no capacity, so any turnaround rolls over.
func (s *DueDateTestSuite) TestCalculateDueDate_SubmittedDuringCutoffHour() {
	got, err := duedate.CalculateDueDate(s.cal, at(9, 17, 30), 1)
	s.Require().NoError(err)
	s.Equal(at(10, 10, 30), got)

	got, err = duedate.CalculateDueDate(s.cal, at(9, 17, 30), 0)
	s.Require().NoError(err)
	s.Equal(at(9, 17, 30), got)
}

func (s *DueDateTestSuite) TestCalculateDueDate_InvalidSubmitTime() {
	const message = "Invalid submit time. Submissions must be made between 9 AM and 5 PM on weekdays."

	for _, submitted := range []time.Time{
		at(8, 8, 0),   // Monday before opening
		at(8, 18, 0),  // Monday after the cutoff hour
		at(13, 14, 0), // Saturday
		at(14, 10, 0), // Sunday
	} {
		for _, hours := range []int{0, 1, 10, -1} {
			_, err := duedate.CalculateDueDate(s.cal, submitted, hours)
			s.Require().ErrorIs(err, domain.ErrInvalidSubmitTime, "%s +%d", submitted, hours)
			s.Equal(message, err.Error())
		}
	}
}

func (s *DueDateTestSuite) TestCalculateDueDate_NegativeTurnaround() {
	_, err := duedate.CalculateDueDate(s.cal, at(9, 10, 0), -1)
	s.ErrorIs(err, domain.ErrInvalidTurnaround)
}

func (s *DueDateTestSuite) TestCalculateDueDate_Properties() {
	submissions := []time.Time{
		at(8, 9, 0), at(9, 12, 7), at(10, 16, 59), at(11, 17, 0), at(12, 13, 45), at(12, 17, 59),
	}

	for _, submitted := range submissions {
		var previous time.Time
		for hours := 0; hours <= 100; hours++ {
			got, err := duedate.CalculateDueDate(s.cal, submitted, hours)
			s.Require().NoError(err)

			s.True(s.cal.IsWorkingDay(got), "%s +%d landed on %s", submitted, hours, got.Weekday())
			s.False(got.Before(previous), "%s +%d went backwards", submitted, hours)
			previous = got

			if hours == 0 {
				continue
			}
			s.GreaterOrEqual(got.Hour(), 9)
			s.LessOrEqual(got.Hour(), 17)

			if got.YearDay() != submitted.YearDay() {
				s.Equal(submitted.Minute(), got.Minute())
				s.Zero(got.Second())
				s.Zero(got.Nanosecond())
			} else if submitted.Hour()+hours <= 17 {
				s.Equal(submitted.Add(time.Duration(hours)*time.Hour), got)
			}
		}
	}
}

func (s *DueDateTestSuite) TestCalculateDueDate_FridayToMondaySkipsWeekend() {
	got, err := duedate.CalculateDueDate(s.cal, at(12, 15, 0), 3)
	s.Require().NoError(err)

	s.Equal(3, domain.CalendarDaysBetween(at(12, 15, 0), got))
	s.Equal(time.Monday, got.Weekday())
	s.Equal(at(15, 10, 0), got)
}

func (s *DueDateTestSuite) TestCalculateDueDate_KeepsWallClockAcrossDST() {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		s.T().Skip("tzdata not available")
	}

	// DST ends on Sunday 27 October 2024 in Berlin.
	submitted := time.Date(2024, 10, 25, 16, 20, 0, 0, loc)
	got, err := duedate.CalculateDueDate(s.cal, submitted, 3)
	s.Require().NoError(err)

	s.Equal(time.Date(2024, 10, 28, 11, 20, 0, 0, loc), got)
	s.Equal(11, got.Hour())
}

func (s *DueDateTestSuite) TestAdvanceToNextWorkingDay() {
	tests := []struct {
		name   string
		from   time.Time
		minute int
		want   time.Time
	}{
		{"saturday to monday", at(13, 10, 30), 30, at(15, 9, 30)},
		{"friday to monday", at(12, 16, 45), 45, at(15, 9, 45)},
		{"monday to tuesday", at(8, 15, 22), 22, at(9, 9, 22)},
		{"sunday to monday", at(14, 23, 0), 0, at(15, 9, 0)},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, duedate.AdvanceToNextWorkingDay(s.cal, tt.from, tt.minute))
		})
	}
}

func (s *DueDateTestSuite) TestAdvanceToNextWorkingDay_ResetsSecondsAndKeepsInput() {
	from := time.Date(2024, 7, 9, 16, 10, 33, 999_000_000, time.UTC)
	snapshot := from

	got := duedate.AdvanceToNextWorkingDay(s.cal, from, 10)

	s.Equal(time.Date(2024, 7, 10, 9, 10, 0, 0, time.UTC), got)
	s.Equal(snapshot, from)
}

func (s *DueDateTestSuite) TestAdvanceToNextWorkingDay_CalendarWithoutWorkingDays() {
	empty := domain.BusinessCalendar{StartHour: 9, EndHour: 17}

	got := duedate.AdvanceToNextWorkingDay(empty, at(8, 10, 0), 0)
	s.Equal(at(15, 9, 0), got)
}

func (s *DueDateTestSuite) TestCalculateDueDate_CalendarWithoutWorkingHours() {
	cal := domain.DefaultCalendar()
	cal.EndHour = cal.StartHour

	_, err := duedate.CalculateDueDate(cal, at(8, 9, 0), 1)
	s.ErrorIs(err, domain.ErrInvalidCalendar)

	got, err := duedate.CalculateDueDate(cal, at(8, 9, 0), 0)
	s.Require().NoError(err)
	s.Equal(at(8, 9, 0), got)
}
