package attendance

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

var millisPerHour = decimal.NewFromInt(int64(time.Hour / time.Millisecond))

// hoursFromDuration converts d to hours rounded to two decimals.
func hoursFromDuration(d time.Duration) decimal.Decimal {
	return decimal.NewFromInt(d.Milliseconds()).Div(millisPerHour).Round(2)
}

// DailyHours sums closed shifts per day. Open shifts count for zero. Days are ascending.
func DailyHours(events []attendance.ClockEvent) []attendance.DailySummary {
	groups := groupByDay(events)
	daily := make([]attendance.DailySummary, 0, len(groups))

	for _, g := range groups {
		var worked time.Duration
		for _, pair := range pairDay(g) {
			worked += pair.Duration()
		}
		daily = append(daily, attendance.DailySummary{
			Day:   g.day,
			Hours: hoursFromDuration(worked),
		})
	}
	return daily
}

type weekBucket struct {
	year  int
	week  int
	key   string
	hours decimal.Decimal
}

// WeeklyHours buckets daily totals by week key and sums each bucket.
// Summaries whose day does not parse are skipped.
func WeeklyHours(daily []attendance.DailySummary) []attendance.WeeklySummary {
	buckets := map[string]*weekBucket{}

	for _, d := range daily {
		date, err := time.Parse(attendance.DayLayout, d.Day)
		if err != nil {
			continue
		}
		key := calendar.WeekKey(date)
		b, ok := buckets[key]
		if !ok {
			b = &weekBucket{year: date.Year(), week: calendar.WeekNumber(date), key: key}
			buckets[key] = b
		}
		b.hours = b.hours.Add(d.Hours)
	}

	ordered := make([]*weekBucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].year != ordered[j].year {
			return ordered[i].year < ordered[j].year
		}
		return ordered[i].week < ordered[j].week
	})

	weekly := make([]attendance.WeeklySummary, 0, len(ordered))
	for _, b := range ordered {
		weekly = append(weekly, attendance.WeeklySummary{
			Week:  b.key,
			Hours: b.hours.Round(2),
		})
	}
	return weekly
}

// MinutesWorked returns the closed-shift minutes per day, rounded to the nearest minute.
func MinutesWorked(events []attendance.ClockEvent) map[string]int {
	minutes := map[string]int{}
	for _, g := range groupByDay(events) {
		var worked time.Duration
		for _, pair := range pairDay(g) {
			worked += pair.Duration()
		}
		minutes[g.day] = int(worked.Round(time.Minute) / time.Minute)
	}
	return minutes
}
