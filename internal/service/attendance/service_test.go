package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-engine/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingTeamSource struct{ schedule.TeamSource }

func (failingTeamSource) FetchTeamOfUser(ctx context.Context, userID string) (schedule.Team, error) {
	return schedule.Team{}, errors.New("connection refused")
}

func newTestService(t *testing.T, teams schedule.TeamSource, events ...attendance.ClockEvent) *AttendanceServiceImpl {
	t.Helper()
	svc, err := NewAttendanceService(memory.NewClockEventStore(events...), teams, newTestEvaluator(t, "2025-02-01T12:00:00Z"), "")
	require.NoError(t, err)
	return svc
}

func TestAttendanceService_WindowIsInclusive(t *testing.T) {
	svc := newTestService(t, memory.NewTeamStore(),
		at("2025-01-14T09:00:00Z"), at("2025-01-14T17:00:00Z"),
		at("2025-01-15T09:00:00Z"), at("2025-01-15T17:00:00Z"),
		at("2025-01-16T09:00:00Z"), at("2025-01-16T10:00:00Z"),
	)
	ctx := context.Background()

	daily, err := svc.GetDailyHours(ctx, attendance.WindowRequest{UserID: "u1", From: "2025-01-15", To: "2025-01-16"})
	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.Equal(t, "2025-01-15", daily[0].Day)
	assert.Equal(t, "1.00", daily[1].Hours.StringFixed(2))

	weekly, err := svc.GetWeeklyHours(ctx, attendance.WindowRequest{UserID: "u1", From: "2025-01-14", To: "2025-01-16"})
	require.NoError(t, err)
	require.Len(t, weekly, 1)
	assert.Equal(t, "2025-W3", weekly[0].Week)
	assert.Equal(t, "17.00", weekly[0].Hours.StringFixed(2))

	shifts, err := svc.GetShifts(ctx, attendance.WindowRequest{UserID: "u1", From: "2025-01-16", To: "2025-01-16"})
	require.NoError(t, err)
	assert.Len(t, shifts, 1)
}

func TestAttendanceService_InvalidWindow(t *testing.T) {
	svc := newTestService(t, memory.NewTeamStore())

	_, err := svc.GetShifts(context.Background(), attendance.WindowRequest{UserID: "u1", From: "2025-01-16", To: "2025-01-15"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "to")
}

func TestAttendanceService_LatenessUsesTeamSchedule(t *testing.T) {
	teams := memory.NewTeamStore()
	teams.Put(schedule.Team{ID: "t1", StartHour: 8, EndHour: 16}, "u1")

	svc := newTestService(t, teams, parisEvent(t, "2025-01-15 08:20"))
	ctx := context.Background()

	v, err := svc.EvaluateLateness(ctx, attendance.LatenessRequest{UserID: "u1", Day: "2025-01-15"})
	require.NoError(t, err)
	assert.Equal(t, attendance.DelayStatusLate, v.Status)
	assert.Equal(t, 20, *v.Minutes)

	// explicit unknown team falls back to 9
	unknown := "missing"
	v, err = svc.EvaluateLateness(ctx, attendance.LatenessRequest{UserID: "u1", Day: "2025-01-15", TeamID: &unknown})
	require.NoError(t, err)
	assert.Equal(t, attendance.DelayStatusEarly, v.Status)
	assert.Equal(t, -40, *v.Minutes)

	v, err = svc.EvaluateLateness(ctx, attendance.LatenessRequest{UserID: "u1", Day: "2025-01-15", Mode: attendance.LatenessModeBadge, TeamID: &unknown})
	require.NoError(t, err)
	assert.Equal(t, attendance.DelayStatusOnTime, v.Status)
	assert.Equal(t, 0, *v.Minutes)
}

func TestAttendanceService_LatenessNoTeamDefaultsToNine(t *testing.T) {
	svc := newTestService(t, memory.NewTeamStore(), parisEvent(t, "2025-01-15 09:20"))

	v, err := svc.EvaluateLateness(context.Background(), attendance.LatenessRequest{UserID: "u1", Day: "2025-01-15"})
	require.NoError(t, err)
	assert.Equal(t, attendance.DelayStatusLate, v.Status)
	assert.Equal(t, 20, *v.Minutes)
}

func TestAttendanceService_LatenessSourceError(t *testing.T) {
	svc := newTestService(t, failingTeamSource{})

	_, err := svc.EvaluateLateness(context.Background(), attendance.LatenessRequest{UserID: "u1", Day: "2025-01-15"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch team schedule")
}

func TestAttendanceService_LatenessInvalidMode(t *testing.T) {
	svc := newTestService(t, memory.NewTeamStore())

	_, err := svc.EvaluateLateness(context.Background(), attendance.LatenessRequest{UserID: "u1", Day: "2025-01-15", Mode: "strict"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "mode")
}

func TestNewAttendanceService_RejectsUnknownDefaultMode(t *testing.T) {
	_, err := NewAttendanceService(memory.NewClockEventStore(), memory.NewTeamStore(), &Evaluator{Location: time.UTC}, "strict")
	assert.ErrorIs(t, err, attendance.ErrInvalidMode)
}
