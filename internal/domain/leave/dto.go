package leave

import (
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/validator"
)

// ========================================
// LEAVE REQUEST DTOs
// ========================================

// CreateLeaveRequest carries an inclusive [start_date, end_date] span.
type CreateLeaveRequest struct {
	UserID    string `json:"-"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	for _, e := range validator.ValidateDateRange(r.StartDate, r.EndDate) {
		switch e.Field {
		case "from":
			e.Field = "start_date"
			e.Message = "start_date must be in YYYY-MM-DD format"
		case "to":
			e.Field = "end_date"
			if _, ok := validator.IsValidDate(r.EndDate); ok {
				e.Message = "end_date must not be before start_date"
			} else {
				e.Message = "end_date must be in YYYY-MM-DD format"
			}
		}
		errs = append(errs, e)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range returns the inclusive span. It must only be called after Validate succeeded.
func (r *CreateLeaveRequest) Range() DateRange {
	start, _ := time.Parse("2006-01-02", r.StartDate)
	end, _ := time.Parse("2006-01-02", r.EndDate)
	return DateRange{Start: start, End: end}
}

type PeriodResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"` // inclusive
	Accepted  bool   `json:"accepted"`
}

func NewPeriodResponse(p Period) PeriodResponse {
	return PeriodResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		StartDate: p.StartDate.Format("2006-01-02"),
		EndDate:   p.InclusiveEnd().Format("2006-01-02"),
		Accepted:  p.IsAccepted(),
	}
}

// ========================================
// CALENDAR DTOs
// ========================================

type CalendarRequest struct {
	UserID string `json:"user_id"`
	Year   int    `json:"year"`
	Month  int    `json:"month"`
}

func (r *CalendarRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Year < 1 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 1 and 9999",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CalendarDay keeps the holiday, weekend and leave facts of a day apart.
type CalendarDay struct {
	Date        string    `json:"date"`
	Holiday     bool      `json:"holiday"`
	HolidayName string    `json:"holiday_name,omitempty"`
	Weekend     bool      `json:"weekend"`
	Leave       DayStatus `json:"leave"`
}

// State folds the facts into one display state. A holiday wins over leave.
func (d CalendarDay) State() string {
	switch {
	case d.Holiday:
		return "holiday"
	case d.Leave == DayStatusValidated:
		return "validated"
	case d.Leave == DayStatusPending:
		return "pending"
	case d.Weekend:
		return "weekend"
	default:
		return "working"
	}
}

type CalendarResponse struct {
	UserID string             `json:"user_id"`
	Year   int                `json:"year"`
	Month  int                `json:"month"`
	Days   []CalendarDayState `json:"days"`
}

type CalendarDayState struct {
	CalendarDay
	State string `json:"state"`
}

type HolidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func NewHolidayResponses(holidays []calendar.Holiday) []HolidayResponse {
	resp := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		resp = append(resp, HolidayResponse{Date: h.Date.Format("2006-01-02"), Name: h.Name})
	}
	return resp
}
