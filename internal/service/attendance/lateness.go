package attendance

import (
	"time"
	_ "time/tzdata"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
)

const (
	// DefaultStartHour is used when a user belongs to no team.
	DefaultStartHour = 9
	// DefaultTimezone is the single reference locale for wall-clock arrivals.
	DefaultTimezone = "Europe/Paris"

	toleranceMinutes = 5
)

// Evaluator classifies the first arrival of a day against an expected start hour.
type Evaluator struct {
	Location *time.Location
	Now      func() time.Time
	// DefaultStartHour applies when the caller knows no schedule.
	DefaultStartHour int
}

// NewEvaluator loads the named timezone. An empty name selects DefaultTimezone.
func NewEvaluator(timezone string, now func() time.Time) (*Evaluator, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	return &Evaluator{Location: loc, Now: now, DefaultStartHour: DefaultStartHour}, nil
}

func (e *Evaluator) location() *time.Location {
	if e.Location == nil {
		return time.UTC
	}
	return e.Location
}

func (e *Evaluator) today() string {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	return now().In(e.location()).Format(attendance.DayLayout)
}

// Evaluate returns the verdict for targetDay. Days are matched on the UTC
// day-slice while the arrival is read on the reference wall clock.
func (e *Evaluator) Evaluate(events []attendance.ClockEvent, targetDay string, expectedStartHour *int, mode attendance.LatenessMode) attendance.DelayVerdict {
	if targetDay > e.today() {
		return attendance.DelayVerdict{Status: attendance.DelayStatusFuture}
	}

	var arrival time.Time
	found := false
	for _, ev := range events {
		if !ev.Valid() || ev.Day() != targetDay {
			continue
		}
		if !found || ev.Timestamp.Before(arrival) {
			arrival = ev.Timestamp
			found = true
		}
	}
	if !found {
		return attendance.DelayVerdict{Status: attendance.DelayStatusAbsent}
	}

	startHour := e.DefaultStartHour
	if expectedStartHour != nil {
		startHour = *expectedStartHour
	}

	local := arrival.In(e.location())
	delay := local.Hour()*60 + local.Minute() - startHour*60

	if mode == attendance.LatenessModeBadge {
		return badgeVerdict(delay)
	}
	return toleranceVerdict(delay)
}

func toleranceVerdict(delay int) attendance.DelayVerdict {
	status := attendance.DelayStatusOnTime
	switch {
	case delay > toleranceMinutes:
		status = attendance.DelayStatusLate
	case delay < -toleranceMinutes:
		status = attendance.DelayStatusEarly
	}
	return attendance.DelayVerdict{Status: status, Minutes: &delay}
}

func badgeVerdict(delay int) attendance.DelayVerdict {
	if delay > 0 {
		return attendance.DelayVerdict{Status: attendance.DelayStatusLate, Minutes: &delay}
	}
	zero := 0
	return attendance.DelayVerdict{Status: attendance.DelayStatusOnTime, Minutes: &zero}
}

// LatenessMinutes reduces a verdict to the minutes reported in lateness reports.
// Future and absent days report zero.
func LatenessMinutes(v attendance.DelayVerdict) int {
	if v.Minutes == nil || *v.Minutes < 0 {
		return 0
	}
	return *v.Minutes
}
