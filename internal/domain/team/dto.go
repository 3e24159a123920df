package team

import (
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AveragesRequest struct {
	TeamID string `json:"team_id"`
	From   string `json:"from"`
	To     string `json:"to"`
}

func (r *AveragesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TeamID) {
		errs = append(errs, validator.ValidationError{
			Field:   "team_id",
			Message: "team_id is required",
		})
	}

	errs = append(errs, validator.ValidateDateRange(r.From, r.To)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyAverage struct {
	Day   string          `json:"day"`
	Hours decimal.Decimal `json:"hours"`
}

type WeeklyAverage struct {
	Week  string          `json:"week"`
	Hours decimal.Decimal `json:"hours"`
}

type AveragesResponse struct {
	TeamID      string          `json:"team_id"`
	MemberCount int             `json:"member_count"`
	Daily       []DailyAverage  `json:"daily"`
	Weekly      []WeeklyAverage `json:"weekly"`
}

type ExpectedHoursResponse struct {
	TeamID        string `json:"team_id"`
	WorkingDays   int    `json:"working_days"`
	HoursPerDay   int    `json:"hours_per_day"`
	ExpectedHours int    `json:"expected_hours"`
}
