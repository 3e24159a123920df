package report

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/report"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/calendar"
	attendanceEngine "github.com/cmlabs-hris/attendance-engine/internal/service/attendance"
	"golang.org/x/sync/errgroup"
)

// StartHourResolver looks up the expected start hour of a user. A nil hour means the default applies.
type StartHourResolver interface {
	ResolveStartHour(ctx context.Context, userID string, teamID *string) (*int, error)
}

type ReportServiceImpl struct {
	attendance.ClockEventSource
	resolver  StartHourResolver
	evaluator *attendanceEngine.Evaluator
}

func NewReportService(clockEventSource attendance.ClockEventSource, resolver StartHourResolver, evaluator *attendanceEngine.Evaluator) report.ReportService {
	return &ReportServiceImpl{
		ClockEventSource: clockEventSource,
		resolver:         resolver,
		evaluator:        evaluator,
	}
}

// Generate implements report.ReportService.
func (s *ReportServiceImpl) Generate(ctx context.Context, req report.ReportRequest) (report.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.ReportResponse{}, err
	}

	from, _ := time.Parse(attendance.DayLayout, req.From)
	to, _ := time.Parse(attendance.DayLayout, req.To)

	var (
		events    []attendance.ClockEvent
		startHour *int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.ClockEventSource.FetchEvents(gctx, req.UserID, from, to.AddDate(0, 0, 1))
		if err != nil {
			return fmt.Errorf("failed to fetch clock events: %w", err)
		}
		return nil
	})
	if req.ReportType == report.ReportTypeLateness {
		g.Go(func() error {
			var err error
			startHour, err = s.resolver.ResolveStartHour(gctx, req.UserID, nil)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return report.ReportResponse{}, err
	}

	days := calendar.WorkingDays(from, to, calendar.IsHolidayDate)
	resp := report.ReportResponse{UserID: req.UserID, ReportType: req.ReportType}

	switch req.ReportType {
	case report.ReportTypePresence:
		resp.Presence = Presence(events, days)
	case report.ReportTypeLateness:
		resp.Lateness = Lateness(s.evaluator, events, days, startHour)
	}
	return resp, nil
}

// Presence returns the minutes worked on each of days.
func Presence(events []attendance.ClockEvent, days []time.Time) []report.PresenceEntry {
	minutes := attendanceEngine.MinutesWorked(events)

	entries := make([]report.PresenceEntry, 0, len(days))
	for _, d := range days {
		day := d.Format(attendance.DayLayout)
		entries = append(entries, report.PresenceEntry{Day: day, Time: minutes[day]})
	}
	return entries
}

// Lateness returns the minutes late on each of days using the badge strategy.
func Lateness(evaluator *attendanceEngine.Evaluator, events []attendance.ClockEvent, days []time.Time, startHour *int) []report.LatenessEntry {
	entries := make([]report.LatenessEntry, 0, len(days))
	for _, d := range days {
		day := d.Format(attendance.DayLayout)
		verdict := evaluator.Evaluate(events, day, startHour, attendance.LatenessModeBadge)
		entries = append(entries, report.LatenessEntry{Day: day, Lateness: attendanceEngine.LatenessMinutes(verdict)})
	}
	return entries
}
