package calendar

import (
	"fmt"
	"time"
)

// WeekNumber returns the week bucket number of a UTC calendar date, counting
// weeks from January 1st: ceil((daysSinceJan1 + weekday(Jan1) + 1) / 7), with
// Sunday as weekday 0.
func WeekNumber(date time.Time) int {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	jan1 := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)

	days := int(day.Sub(jan1).Hours() / 24)
	n := days + int(jan1.Weekday()) + 1
	return (n + 6) / 7
}

// WeekKey formats the bucket key "YYYY-Www" of date. The week number is not zero padded.
func WeekKey(date time.Time) string {
	return fmt.Sprintf("%d-W%d", date.Year(), WeekNumber(date))
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// EachDay calls fn for every calendar day from `from` to `to`, both inclusive.
func EachDay(from, to time.Time, fn func(day time.Time)) {
	y, m, d := from.Date()
	cur := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	y, m, d = to.Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	for !cur.After(end) {
		fn(cur)
		cur = cur.AddDate(0, 0, 1)
	}
}

// WorkingDays returns the Monday to Friday dates between from and to inclusive
// for which skip returns false. A nil skip keeps every weekday.
func WorkingDays(from, to time.Time, skip func(day time.Time) bool) []time.Time {
	var days []time.Time
	EachDay(from, to, func(day time.Time) {
		if IsWeekend(day) {
			return
		}
		if skip != nil && skip(day) {
			return
		}
		days = append(days, day)
	})
	return days
}
