package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/schedule"
)

type AttendanceServiceImpl struct {
	attendance.ClockEventSource
	schedule.TeamSource
	evaluator   *Evaluator
	defaultMode attendance.LatenessMode
}

// GetShifts implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetShifts(ctx context.Context, req attendance.WindowRequest) ([]attendance.ShiftPair, error) {
	events, err := s.fetchWindow(ctx, req)
	if err != nil {
		return nil, err
	}
	return ReconstructShifts(events), nil
}

// GetDailyHours implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDailyHours(ctx context.Context, req attendance.WindowRequest) ([]attendance.DailySummary, error) {
	events, err := s.fetchWindow(ctx, req)
	if err != nil {
		return nil, err
	}
	return DailyHours(events), nil
}

// GetWeeklyHours implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetWeeklyHours(ctx context.Context, req attendance.WindowRequest) ([]attendance.WeeklySummary, error) {
	events, err := s.fetchWindow(ctx, req)
	if err != nil {
		return nil, err
	}
	return WeeklyHours(DailyHours(events)), nil
}

// EvaluateLateness implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) EvaluateLateness(ctx context.Context, req attendance.LatenessRequest) (attendance.DelayVerdict, error) {
	if err := req.Validate(); err != nil {
		return attendance.DelayVerdict{}, err
	}

	mode := req.Mode
	if mode == "" {
		mode = s.defaultMode
	}

	startHour, err := s.ResolveStartHour(ctx, req.UserID, req.TeamID)
	if err != nil {
		return attendance.DelayVerdict{}, err
	}

	day, _ := time.Parse(attendance.DayLayout, req.Day)
	events, err := s.ClockEventSource.FetchEvents(ctx, req.UserID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return attendance.DelayVerdict{}, fmt.Errorf("failed to fetch clock events: %w", err)
	}

	return s.evaluator.Evaluate(events, req.Day, startHour, mode), nil
}

// ResolveStartHour returns the team's start hour, or nil when the user has no team.
// An explicit teamID takes precedence over the user's own team.
func (s *AttendanceServiceImpl) ResolveStartHour(ctx context.Context, userID string, teamID *string) (*int, error) {
	var (
		team schedule.Team
		err  error
	)
	if teamID != nil && *teamID != "" {
		team, err = s.TeamSource.FetchTeam(ctx, *teamID)
	} else {
		team, err = s.TeamSource.FetchTeamOfUser(ctx, userID)
	}

	if errors.Is(err, schedule.ErrTeamNotFound) {
		slog.Debug("No team schedule, using default start hour", "user_id", userID, "start_hour", s.evaluator.DefaultStartHour)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch team schedule: %w", err)
	}
	return &team.StartHour, nil
}

func (s *AttendanceServiceImpl) fetchWindow(ctx context.Context, req attendance.WindowRequest) ([]attendance.ClockEvent, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from, to := req.Bounds()
	events, err := s.ClockEventSource.FetchEvents(ctx, req.UserID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clock events: %w", err)
	}
	return events, nil
}

func NewAttendanceService(
	clockEventSource attendance.ClockEventSource,
	teamSource schedule.TeamSource,
	evaluator *Evaluator,
	defaultMode attendance.LatenessMode,
) (*AttendanceServiceImpl, error) {
	if defaultMode == "" {
		defaultMode = attendance.LatenessModeTolerance
	}
	if defaultMode != attendance.LatenessModeTolerance && defaultMode != attendance.LatenessModeBadge {
		return nil, attendance.ErrInvalidMode
	}

	return &AttendanceServiceImpl{
		ClockEventSource: clockEventSource,
		TeamSource:       teamSource,
		evaluator:        evaluator,
		defaultMode:      defaultMode,
	}, nil
}
