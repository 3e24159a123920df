package schedule

import (
	"slices"
	"time"
)

// Team is a group of employees sharing a schedule.
type Team struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	StartHour int      `json:"start_hour"`
	EndHour   int      `json:"end_hour"`
	DayOff    []string `json:"day_off"` // YYYY-MM-DD
}

// DailyHours is the scheduled length of one working day. It never goes below zero.
func (t Team) DailyHours() int {
	if t.EndHour < t.StartHour {
		return 0
	}
	return t.EndHour - t.StartHour
}

// IsDayOff reports whether day is one of the team's days off.
func (t Team) IsDayOff(day time.Time) bool {
	return slices.Contains(t.DayOff, day.UTC().Format("2006-01-02"))
}
