package leave

import (
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/calendar"
)

// FindOverlap returns the first existing period sharing a day with candidate.
// Pending periods reserve their range just like accepted ones.
func FindOverlap(candidate leave.DateRange, existing []leave.Period) (leave.Period, bool) {
	for _, p := range existing {
		if !candidate.Start.After(p.InclusiveEnd()) && !candidate.End.Before(p.StartDate) {
			return p, true
		}
	}
	return leave.Period{}, false
}

// Overlaps reports whether candidate shares at least one day with any existing period.
func Overlaps(candidate leave.DateRange, existing []leave.Period) bool {
	_, found := FindOverlap(candidate, existing)
	return found
}

// DayStatus returns the leave state of day. Validated takes precedence over pending.
func DayStatus(day time.Time, periods []leave.Period) leave.DayStatus {
	status := leave.DayStatusNone
	for _, p := range periods {
		if !p.Covers(day) {
			continue
		}
		if p.IsAccepted() {
			return leave.DayStatusValidated
		}
		status = leave.DayStatusPending
	}
	return status
}

// MonthCalendar renders every day of a month with its holiday, weekend and leave facts.
func MonthCalendar(year int, month time.Month, periods []leave.Period) []leave.CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	days := make([]leave.CalendarDay, 0, last.Day())
	calendar.EachDay(first, last, func(d time.Time) {
		name, holiday := calendar.HolidayName(d.Day(), d.Month(), d.Year())
		days = append(days, leave.CalendarDay{
			Date:        d.Format("2006-01-02"),
			Holiday:     holiday,
			HolidayName: name,
			Weekend:     calendar.IsWeekend(d),
			Leave:       DayStatus(d, periods),
		})
	})
	return days
}
