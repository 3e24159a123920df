package attendance

import "context"

// AttendanceService exposes the shift, hour and lateness computations for one user.
type AttendanceService interface {
	// GetShifts reconstructs the shift pairs of a user over a window
	GetShifts(ctx context.Context, req WindowRequest) ([]ShiftPair, error)

	// GetDailyHours returns the worked hours per calendar day
	GetDailyHours(ctx context.Context, req WindowRequest) ([]DailySummary, error)

	// GetWeeklyHours returns the worked hours per week bucket
	GetWeeklyHours(ctx context.Context, req WindowRequest) ([]WeeklySummary, error)

	// EvaluateLateness classifies the first arrival of a day
	EvaluateLateness(ctx context.Context, req LatenessRequest) (DelayVerdict, error)
}
