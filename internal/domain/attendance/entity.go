package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayLayout is the layout of a day-slice: the first 10 characters of an ISO-8601 UTC timestamp.
const DayLayout = "2006-01-02"

// ClockEvent is one punch. There is no in/out tag: the position of the punch
// within its day decides whether it opens or closes a shift.
// A zero Timestamp marks a malformed punch.
type ClockEvent struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Valid reports whether the event carries a usable timestamp.
func (e ClockEvent) Valid() bool {
	return !e.Timestamp.IsZero()
}

// Day returns the UTC day-slice of the event.
func (e ClockEvent) Day() string {
	return DaySlice(e.Timestamp)
}

// DaySlice truncates the UTC ISO representation of t to its date portion.
func DaySlice(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// ShiftPair is a clock-in and its matching clock-out. ClockOut is nil while the shift is open.
type ShiftPair struct {
	Day      string     `json:"day"`
	ClockIn  time.Time  `json:"clock_in"`
	ClockOut *time.Time `json:"clock_out"`
}

// Open reports whether the shift has no clock-out yet.
func (s ShiftPair) Open() bool {
	return s.ClockOut == nil
}

// Duration returns the worked duration of a closed shift and zero for an open one.
func (s ShiftPair) Duration() time.Duration {
	if s.ClockOut == nil {
		return 0
	}
	return s.ClockOut.Sub(s.ClockIn)
}

type DailySummary struct {
	Day   string          `json:"day"`
	Hours decimal.Decimal `json:"hours"`
}

type WeeklySummary struct {
	Week  string          `json:"week"`
	Hours decimal.Decimal `json:"hours"`
}

// DelayStatus classifies a day's arrival against the expected start hour.
type DelayStatus string

const (
	DelayStatusFuture DelayStatus = "future"
	DelayStatusAbsent DelayStatus = "absent"
	DelayStatusOnTime DelayStatus = "on_time"
	DelayStatusEarly  DelayStatus = "early"
	DelayStatusLate   DelayStatus = "late"
)

// DelayVerdict is the lateness outcome for one day. Minutes is nil for future and absent days.
type DelayVerdict struct {
	Status  DelayStatus `json:"status"`
	Minutes *int        `json:"minutes"`
}

// LatenessMode selects how a delay in minutes is turned into a verdict.
type LatenessMode string

const (
	// LatenessModeTolerance classifies with a ±5 minute band: late, early or on time.
	LatenessModeTolerance LatenessMode = "tolerance"
	// LatenessModeBadge counts any positive delay as late and clamps the rest to zero.
	LatenessModeBadge LatenessMode = "badge"
)

var LatenessModeValues = []string{
	string(LatenessModeTolerance),
	string(LatenessModeBadge),
}
