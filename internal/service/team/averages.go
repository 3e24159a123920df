package team

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/team"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/calendar"
	attendanceEngine "github.com/cmlabs-hris/attendance-engine/internal/service/attendance"
	"github.com/shopspring/decimal"
)

// mergeDaily sums every member's daily totals per day. Days are ascending.
func mergeDaily(perMember [][]attendance.DailySummary) []attendance.DailySummary {
	totals := map[string]decimal.Decimal{}
	for _, daily := range perMember {
		for _, d := range daily {
			totals[d.Day] = totals[d.Day].Add(d.Hours)
		}
	}

	merged := make([]attendance.DailySummary, 0, len(totals))
	for day, hours := range totals {
		merged = append(merged, attendance.DailySummary{Day: day, Hours: hours})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Day < merged[j].Day })
	return merged
}

func divisor(memberCount int) decimal.Decimal {
	if memberCount <= 0 {
		memberCount = 1
	}
	return decimal.NewFromInt(int64(memberCount))
}

// AverageDaily merges per-member daily totals and divides each day by memberCount.
func AverageDaily(perMember [][]attendance.DailySummary, memberCount int) []team.DailyAverage {
	div := divisor(memberCount)
	merged := mergeDaily(perMember)

	averages := make([]team.DailyAverage, 0, len(merged))
	for _, d := range merged {
		averages = append(averages, team.DailyAverage{Day: d.Day, Hours: d.Hours.Div(div).Round(2)})
	}
	return averages
}

// AverageWeekly buckets the merged daily totals by week and divides each bucket by memberCount.
func AverageWeekly(perMember [][]attendance.DailySummary, memberCount int) []team.WeeklyAverage {
	div := divisor(memberCount)
	weekly := attendanceEngine.WeeklyHours(mergeDaily(perMember))

	averages := make([]team.WeeklyAverage, 0, len(weekly))
	for _, w := range weekly {
		averages = append(averages, team.WeeklyAverage{Week: w.Week, Hours: w.Hours.Div(div).Round(2)})
	}
	return averages
}

// ExpectedHours multiplies the team's daily length by the Mon-Fri days in
// [from, to] that are not team days off.
func ExpectedHours(t schedule.Team, from, to time.Time) (workingDays, hours int) {
	workingDays = len(calendar.WorkingDays(from, to, t.IsDayOff))
	return workingDays, t.DailyHours() * workingDays
}
