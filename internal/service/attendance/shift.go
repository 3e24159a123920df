package attendance

import (
	"sort"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
)

// dayGroup holds the sorted punches of one day-slice.
type dayGroup struct {
	day    string
	events []attendance.ClockEvent
}

// groupByDay drops malformed punches, stable-sorts the rest by timestamp and
// buckets them by UTC day-slice. Groups are returned in ascending day order.
// The input slice is never modified.
func groupByDay(events []attendance.ClockEvent) []dayGroup {
	valid := make([]attendance.ClockEvent, 0, len(events))
	for _, e := range events {
		if e.Valid() {
			valid = append(valid, e)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Timestamp.Before(valid[j].Timestamp)
	})

	var groups []dayGroup
	for _, e := range valid {
		day := e.Day()
		if n := len(groups); n > 0 && groups[n-1].day == day {
			groups[n-1].events = append(groups[n-1].events, e)
			continue
		}
		groups = append(groups, dayGroup{day: day, events: []attendance.ClockEvent{e}})
	}
	return groups
}

// pairDay consumes the sorted punches of a single day two by two. A trailing
// odd punch yields an open shift. Pairing never crosses into another day.
func pairDay(g dayGroup) []attendance.ShiftPair {
	pairs := make([]attendance.ShiftPair, 0, (len(g.events)+1)/2)
	for i := 0; i < len(g.events); i += 2 {
		pair := attendance.ShiftPair{
			Day:     g.day,
			ClockIn: g.events[i].Timestamp,
		}
		if i+1 < len(g.events) {
			out := g.events[i+1].Timestamp
			pair.ClockOut = &out
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

// ReconstructShifts turns unordered punches into shift pairs grouped by day.
func ReconstructShifts(events []attendance.ClockEvent) []attendance.ShiftPair {
	shifts := []attendance.ShiftPair{}
	for _, g := range groupByDay(events) {
		shifts = append(shifts, pairDay(g)...)
	}
	return shifts
}
