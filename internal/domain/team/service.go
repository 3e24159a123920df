package team

import "context"

type TeamService interface {
	// GetAverages returns the per-day and per-week average hours of a team's members
	GetAverages(ctx context.Context, req AveragesRequest) (AveragesResponse, error)
	// GetExpectedHours returns the scheduled hours of a team over a window
	GetExpectedHours(ctx context.Context, req AveragesRequest) (ExpectedHoursResponse, error)
}
