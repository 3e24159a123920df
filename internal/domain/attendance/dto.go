package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/pkg/validator"
)

// ========================================
// WINDOW DTOs
// ========================================

// WindowRequest selects a user's punches between two inclusive calendar days.
type WindowRequest struct {
	UserID string `json:"user_id"`
	From   string `json:"from"`
	To     string `json:"to"`
}

func (r *WindowRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	errs = append(errs, validator.ValidateDateRange(r.From, r.To)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Bounds returns the half-open instant window [from 00:00 UTC, to+1 00:00 UTC).
// It must only be called after Validate succeeded.
func (r *WindowRequest) Bounds() (time.Time, time.Time) {
	from, _ := time.Parse(DayLayout, r.From)
	to, _ := time.Parse(DayLayout, r.To)
	return from, to.AddDate(0, 0, 1)
}

// ========================================
// LATENESS DTOs
// ========================================

type LatenessRequest struct {
	UserID string       `json:"user_id"`
	Day    string       `json:"day"`
	TeamID *string      `json:"team_id,omitempty"`
	Mode   LatenessMode `json:"mode,omitempty"`
}

func (r *LatenessRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Day); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be in YYYY-MM-DD format",
		})
	}

	if r.Mode != "" && !validator.IsInSlice(string(r.Mode), LatenessModeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode must be one of: tolerance, badge",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
