package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEaster_KnownDates(t *testing.T) {
	cases := []struct {
		year int
		want string
	}{
		{1961, "1961-04-02"},
		{2000, "2000-04-23"},
		{2008, "2008-03-23"},
		{2011, "2011-04-24"},
		{2019, "2019-04-21"},
		{2024, "2024-03-31"},
		{2025, "2025-04-20"},
		{2026, "2026-04-05"},
		{2038, "2038-04-25"},
	}
	for _, c := range cases {
		got := Easter(c.year).Format("2006-01-02")
		assert.Equal(t, c.want, got, "Easter(%d)", c.year)
	}
}

func TestHolidays_ElevenSortedDates(t *testing.T) {
	holidays := Holidays(2025)
	require.Len(t, holidays, 11)

	for i := 1; i < len(holidays); i++ {
		assert.True(t, holidays[i-1].Date.Before(holidays[i].Date), "holidays must be ordered")
	}

	var dates []string
	for _, h := range holidays {
		dates = append(dates, h.Date.Format("2006-01-02"))
	}
	assert.Equal(t, []string{
		"2025-01-01",
		"2025-04-21", // Easter Monday
		"2025-05-01",
		"2025-05-08",
		"2025-05-29", // Ascension
		"2025-06-09", // Whit Monday
		"2025-07-14",
		"2025-08-15",
		"2025-11-01",
		"2025-11-11",
		"2025-12-25",
	}, dates)
}

func TestIsHoliday(t *testing.T) {
	assert.True(t, IsHoliday(1, time.January, 2025))
	assert.False(t, IsHoliday(2, time.January, 2025))
	assert.True(t, IsHoliday(14, time.July, 2030))
	assert.True(t, IsHoliday(1, time.April, 2024), "Easter Monday 2024")
	assert.False(t, IsHoliday(31, time.March, 2024), "Easter Sunday itself is not listed")
	assert.True(t, IsHoliday(6, time.April, 2026), "Easter Monday 2026")
	assert.False(t, IsHoliday(21, time.April, 2026), "2025 Easter Monday date in another year")
}

func TestHolidayName(t *testing.T) {
	name, ok := HolidayName(25, time.December, 2025)
	assert.True(t, ok)
	assert.Equal(t, "Christmas Day", name)

	_, ok = HolidayName(24, time.December, 2025)
	assert.False(t, ok)
}

func TestIsHolidayDate_UsesCivilFields(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	// 00:30 in Paris on Jan 1st is still Dec 31st in UTC; civil fields of the value decide.
	assert.True(t, IsHolidayDate(time.Date(2025, time.January, 1, 0, 30, 0, 0, paris)))
	assert.False(t, IsHolidayDate(time.Date(2025, time.January, 1, 0, 30, 0, 0, paris).UTC()))
}
