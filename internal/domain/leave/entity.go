package leave

import "time"

// Period is a leave request. StartDate and EndDate are UTC midnights and
// EndDate is exclusive: a single-day leave on the 10th stores EndDate = the 11th.
type Period struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	Accepted  *bool      `json:"accepted"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// IsAccepted reports whether a manager approved the period.
func (p Period) IsAccepted() bool {
	return p.Accepted != nil && *p.Accepted
}

// InclusiveEnd returns the last day covered by the period.
func (p Period) InclusiveEnd() time.Time {
	return p.EndDate.AddDate(0, 0, -1)
}

// Covers reports whether day falls in [StartDate, EndDate).
func (p Period) Covers(day time.Time) bool {
	return !day.Before(p.StartDate) && day.Before(p.EndDate)
}

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DayStatus is the leave state of a single calendar day.
type DayStatus string

const (
	DayStatusNone      DayStatus = ""
	DayStatusPending   DayStatus = "pending"
	DayStatusValidated DayStatus = "validated"
)
