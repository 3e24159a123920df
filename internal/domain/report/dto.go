package report

import (
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/validator"
)

// ReportType selects the per-working-day metric.
type ReportType string

const (
	ReportTypePresence ReportType = "presence"
	ReportTypeLateness ReportType = "lateness"
)

var ReportTypeValues = []string{
	string(ReportTypePresence),
	string(ReportTypeLateness),
}

type ReportRequest struct {
	UserID     string     `json:"userId"`
	ReportType ReportType `json:"reportType"`
	From       string     `json:"from"`
	To         string     `json:"to"`
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if !validator.IsInSlice(string(r.ReportType), ReportTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: presence, lateness",
		})
	}

	errs = append(errs, validator.ValidateDateRange(r.From, r.To)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PresenceEntry holds the minutes worked on one working day.
type PresenceEntry struct {
	Day  string `json:"day"`
	Time int    `json:"time"`
}

// LatenessEntry holds the minutes late on one working day.
type LatenessEntry struct {
	Day      string `json:"day"`
	Lateness int    `json:"lateness"`
}

// ReportResponse carries exactly one of Presence or Lateness.
type ReportResponse struct {
	UserID     string          `json:"user_id"`
	ReportType ReportType      `json:"report_type"`
	Presence   []PresenceEntry `json:"presence,omitempty"`
	Lateness   []LatenessEntry `json:"lateness,omitempty"`
}
