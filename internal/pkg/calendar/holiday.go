// Package calendar computes public holidays and week buckets from civil calendar fields only.
package calendar

import (
	"sort"
	"time"
)

// Holiday is a public holiday on a UTC-midnight date.
type Holiday struct {
	Date time.Time `json:"date"`
	Name string    `json:"name"`
}

type fixedHoliday struct {
	month time.Month
	day   int
	name  string
}

var fixedHolidays = []fixedHoliday{
	{time.January, 1, "New Year's Day"},
	{time.May, 1, "Labour Day"},
	{time.May, 8, "Victory in Europe Day"},
	{time.July, 14, "Bastille Day"},
	{time.August, 15, "Assumption of Mary"},
	{time.November, 1, "All Saints' Day"},
	{time.November, 11, "Armistice Day"},
	{time.December, 25, "Christmas Day"},
}

// Day offsets from Easter Sunday.
var movableHolidays = []struct {
	offset int
	name   string
}{
	{1, "Easter Monday"},
	{39, "Ascension Day"},
	{50, "Whit Monday"},
}

// Easter returns Easter Sunday of the Gregorian year using the anonymous
// Gregorian algorithm (Meeus/Jones/Butcher). The result is at 00:00 UTC.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Holidays returns the eleven public holidays of year, ordered by date.
func Holidays(year int) []Holiday {
	holidays := make([]Holiday, 0, len(fixedHolidays)+len(movableHolidays))

	for _, f := range fixedHolidays {
		holidays = append(holidays, Holiday{
			Date: time.Date(year, f.month, f.day, 0, 0, 0, 0, time.UTC),
			Name: f.name,
		})
	}

	easter := Easter(year)
	for _, m := range movableHolidays {
		holidays = append(holidays, Holiday{
			Date: easter.AddDate(0, 0, m.offset),
			Name: m.name,
		})
	}

	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})
	return holidays
}

// IsHoliday reports whether the civil date (day, month, year) is a public holiday.
func IsHoliday(day int, month time.Month, year int) bool {
	_, ok := HolidayName(day, month, year)
	return ok
}

// HolidayName returns the name of the holiday falling on (day, month, year), if any.
func HolidayName(day int, month time.Month, year int) (string, bool) {
	for _, h := range Holidays(year) {
		y, m, d := h.Date.Date()
		if y == year && m == month && d == day {
			return h.Name, true
		}
	}
	return "", false
}

// IsHolidayDate is IsHoliday over the civil fields of t in its own location.
func IsHolidayDate(t time.Time) bool {
	y, m, d := t.Date()
	return IsHoliday(d, m, y)
}
