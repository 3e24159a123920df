package team

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/team"
	attendanceEngine "github.com/cmlabs-hris/attendance-engine/internal/service/attendance"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches bounds the number of member event fetches in flight.
const maxConcurrentFetches = 8

type TeamServiceImpl struct {
	schedule.TeamSource
	attendance.ClockEventSource
}

// GetAverages implements team.TeamService.
func (s *TeamServiceImpl) GetAverages(ctx context.Context, req team.AveragesRequest) (team.AveragesResponse, error) {
	if err := req.Validate(); err != nil {
		return team.AveragesResponse{}, err
	}

	members, err := s.TeamSource.FetchMembers(ctx, req.TeamID)
	if err != nil {
		return team.AveragesResponse{}, fmt.Errorf("failed to fetch team members: %w", err)
	}

	from, to := bounds(req)
	perMember := make([][]attendance.DailySummary, len(members))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, userID := range members {
		g.Go(func() error {
			events, err := s.ClockEventSource.FetchEvents(gctx, userID, from, to)
			if err != nil {
				return fmt.Errorf("failed to fetch clock events for %s: %w", userID, err)
			}
			perMember[i] = attendanceEngine.DailyHours(events)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return team.AveragesResponse{}, err
	}

	return team.AveragesResponse{
		TeamID:      req.TeamID,
		MemberCount: len(members),
		Daily:       AverageDaily(perMember, len(members)),
		Weekly:      AverageWeekly(perMember, len(members)),
	}, nil
}

// GetExpectedHours implements team.TeamService.
func (s *TeamServiceImpl) GetExpectedHours(ctx context.Context, req team.AveragesRequest) (team.ExpectedHoursResponse, error) {
	if err := req.Validate(); err != nil {
		return team.ExpectedHoursResponse{}, err
	}

	t, err := s.TeamSource.FetchTeam(ctx, req.TeamID)
	if err != nil {
		return team.ExpectedHoursResponse{}, fmt.Errorf("failed to fetch team: %w", err)
	}

	from, to := bounds(req)
	days, hours := ExpectedHours(t, from, to.AddDate(0, 0, -1))

	return team.ExpectedHoursResponse{
		TeamID:        t.ID,
		WorkingDays:   days,
		HoursPerDay:   t.DailyHours(),
		ExpectedHours: hours,
	}, nil
}

// bounds returns [from 00:00 UTC, to+1 00:00 UTC). Callers validate first.
func bounds(req team.AveragesRequest) (time.Time, time.Time) {
	from, _ := time.Parse(attendance.DayLayout, req.From)
	to, _ := time.Parse(attendance.DayLayout, req.To)
	return from, to.AddDate(0, 0, 1)
}

func NewTeamService(teamSource schedule.TeamSource, clockEventSource attendance.ClockEventSource) team.TeamService {
	return &TeamServiceImpl{
		TeamSource:       teamSource,
		ClockEventSource: clockEventSource,
	}
}
