package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-engine/internal/repository/memory"
	attendanceService "github.com/cmlabs-hris/attendance-engine/internal/service/attendance"
	leaveService "github.com/cmlabs-hris/attendance-engine/internal/service/leave"
	reportService "github.com/cmlabs-hris/attendance-engine/internal/service/report"
	teamService "github.com/cmlabs-hris/attendance-engine/internal/service/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

type testServer struct {
	router http.Handler
	jwt    jwt.Service
	events *memory.ClockEventStore
	teams  *memory.TeamStore
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	now, err := time.Parse(time.RFC3339, "2025-02-01T12:00:00Z")
	require.NoError(t, err)
	evaluator, err := attendanceService.NewEvaluator("Europe/Paris", func() time.Time { return now })
	require.NoError(t, err)

	events := memory.NewClockEventStore()
	teams := memory.NewTeamStore()
	periods := memory.NewLeavePeriodStore(teams)

	attendanceSvc, err := attendanceService.NewAttendanceService(events, teams, evaluator, attendance.LatenessModeTolerance)
	require.NoError(t, err)

	jwtSvc := jwt.NewJWTService(handlerTestSecret, "1h")
	router := NewRouter(
		RouterConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		jwtSvc,
		NewAttendanceHandler(attendanceSvc),
		NewLeaveHandler(leaveService.NewLeaveService(periods, &memory.Transactor{})),
		NewTeamHandler(teamService.NewTeamService(teams, events)),
		NewReportHandler(reportService.NewReportService(events, attendanceSvc, evaluator)),
	)

	return &testServer{router: router, jwt: jwtSvc, events: events, teams: teams}
}

func (s *testServer) do(t *testing.T, method, path, userID string, role jwt.Role, body []byte) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if userID != "" {
		token, _, err := s.jwt.GenerateAccessToken(userID, role)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func punch(userID, ts string) attendance.ClockEvent {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return attendance.ClockEvent{UserID: userID, Timestamp: t}
}

func TestRouter_RequiresToken(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(t, http.MethodGet, "/api/v1/users/me/shifts?from=2025-01-15&to=2025-01-15", "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_DailyHours(t *testing.T) {
	s := newTestServer(t)
	s.events.Add(punch("u1", "2025-01-15T17:00:00Z"), punch("u1", "2025-01-15T09:00:00Z"), punch("u1", "2025-01-15T09:30:00Z"))

	w, env := s.do(t, http.MethodGet, "/api/v1/users/me/hours/daily?from=2025-01-15&to=2025-01-15", "u1", jwt.RoleEmployee, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var daily []attendance.DailySummary
	require.NoError(t, json.Unmarshal(env.Data, &daily))
	require.Len(t, daily, 1)
	assert.Equal(t, "2025-01-15", daily[0].Day)
	assert.Equal(t, "0.50", daily[0].Hours.StringFixed(2))

	w, env = s.do(t, http.MethodGet, "/api/v1/users/u1/shifts?from=2025-01-15&to=2025-01-15", "u1", jwt.RoleEmployee, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var shifts []attendance.ShiftPair
	require.NoError(t, json.Unmarshal(env.Data, &shifts))
	require.Len(t, shifts, 2)
	assert.Nil(t, shifts[1].ClockOut)
}

func TestRouter_OtherUserNeedsManager(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(t, http.MethodGet, "/api/v1/users/u2/hours/weekly?from=2025-01-01&to=2025-01-31", "u1", jwt.RoleEmployee, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.do(t, http.MethodGet, "/api/v1/users/u2/hours/weekly?from=2025-01-01&to=2025-01-31", "boss", jwt.RoleManager, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_InvalidWindowIs422(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodGet, "/api/v1/users/me/hours/daily?from=2025-01-16&to=2025-01-15", "u1", jwt.RoleEmployee, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "to")
}

func TestRouter_Lateness(t *testing.T) {
	s := newTestServer(t)
	// 08:20Z is 09:20 in Paris during winter.
	s.events.Add(punch("u1", "2025-01-15T08:20:00Z"))

	w, env := s.do(t, http.MethodGet, "/api/v1/users/me/lateness?day=2025-01-15", "u1", jwt.RoleEmployee, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var verdict attendance.DelayVerdict
	require.NoError(t, json.Unmarshal(env.Data, &verdict))
	assert.Equal(t, attendance.DelayStatusLate, verdict.Status)
	require.NotNil(t, verdict.Minutes)
	assert.Equal(t, 20, *verdict.Minutes)

	w, env = s.do(t, http.MethodGet, "/api/v1/users/me/lateness?day=2025-03-01", "u1", jwt.RoleEmployee, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &verdict))
	assert.Equal(t, attendance.DelayStatusFuture, verdict.Status)
	assert.Nil(t, verdict.Minutes)
}

func TestRouter_LeaveWorkflow(t *testing.T) {
	s := newTestServer(t)

	body := []byte(`{"start_date":"2025-03-10","end_date":"2025-03-12"}`)
	w, env := s.do(t, http.MethodPost, "/api/v1/leaves", "u1", jwt.RoleEmployee, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID      string `json:"id"`
		EndDate string `json:"end_date"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "2025-03-12", created.EndDate)

	w, env = s.do(t, http.MethodPost, "/api/v1/leaves", "u1", jwt.RoleEmployee, []byte(`{"start_date":"2025-03-12","end_date":"2025-03-13"}`))
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "2025-03-10 to 2025-03-12")

	w, _ = s.do(t, http.MethodPut, "/api/v1/leaves/"+created.ID+"/approve", "u1", jwt.RoleEmployee, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.do(t, http.MethodPut, "/api/v1/leaves/"+created.ID+"/approve", "boss", jwt.RoleManager, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = s.do(t, http.MethodGet, "/api/v1/users/me/calendar?year=2025&month=3", "u1", jwt.RoleEmployee, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cal struct {
		Days []struct {
			Date  string `json:"date"`
			Leave string `json:"leave"`
			State string `json:"state"`
		} `json:"days"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cal))
	require.Len(t, cal.Days, 31)
	assert.Equal(t, "validated", cal.Days[9].State)
	assert.Equal(t, "validated", cal.Days[11].Leave)
	assert.Equal(t, "", cal.Days[12].Leave)

	w, _ = s.do(t, http.MethodDelete, "/api/v1/leaves/"+created.ID, "u2", jwt.RoleEmployee, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.do(t, http.MethodDelete, "/api/v1/leaves/"+created.ID, "u1", jwt.RoleEmployee, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = s.do(t, http.MethodGet, "/api/v1/leaves/me", "u1", jwt.RoleEmployee, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	w, _ = s.do(t, http.MethodDelete, "/api/v1/leaves/not-a-uuid", "u1", jwt.RoleEmployee, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_Holidays(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodGet, "/api/v1/holidays/2026", "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var holidays []struct {
		Date string `json:"date"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &holidays))
	require.Len(t, holidays, 11)
	dates := make([]string, 0, len(holidays))
	for _, h := range holidays {
		dates = append(dates, h.Date)
	}
	assert.Contains(t, dates, "2026-04-06") // Easter Monday

	w, _ = s.do(t, http.MethodGet, "/api/v1/holidays/20x6", "", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_TeamAverages(t *testing.T) {
	s := newTestServer(t)
	s.teams.Put(schedule.Team{ID: "t1", StartHour: 9, EndHour: 17}, "a", "b")
	s.events.Add(
		punch("a", "2025-01-15T09:00:00Z"), punch("a", "2025-01-15T17:00:00Z"),
		punch("b", "2025-01-15T09:00:00Z"), punch("b", "2025-01-15T13:00:00Z"),
	)

	w, env := s.do(t, http.MethodGet, "/api/v1/teams/t1/averages?from=2025-01-13&to=2025-01-17", "boss", jwt.RoleManager, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var averages struct {
		MemberCount int `json:"member_count"`
		Daily       []struct {
			Day   string `json:"day"`
			Hours string `json:"hours"`
		} `json:"daily"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &averages))
	assert.Equal(t, 2, averages.MemberCount)
	require.Len(t, averages.Daily, 1)
	assert.Equal(t, "6", averages.Daily[0].Hours)

	w, env = s.do(t, http.MethodGet, "/api/v1/teams/t1/expected-hours?from=2025-01-13&to=2025-01-19", "boss", jwt.RoleManager, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"team_id":"t1","working_days":5,"hours_per_day":8,"expected_hours":40}`, string(env.Data))

	w, _ = s.do(t, http.MethodGet, "/api/v1/teams/missing/averages?from=2025-01-13&to=2025-01-17", "boss", jwt.RoleManager, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_TeamRoutesNeedManager(t *testing.T) {
	s := newTestServer(t)
	s.teams.Put(schedule.Team{ID: "t1", StartHour: 9, EndHour: 17}, "a", "b")

	w, _ := s.do(t, http.MethodGet, "/api/v1/teams/t1/averages?from=2025-01-13&to=2025-01-17", "a", jwt.RoleEmployee, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.do(t, http.MethodGet, "/api/v1/teams/t1/expected-hours?from=2025-01-13&to=2025-01-19", "a", jwt.RoleEmployee, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_Reports(t *testing.T) {
	s := newTestServer(t)
	s.events.Add(punch("u1", "2025-01-15T08:00:00Z"), punch("u1", "2025-01-15T16:00:00Z"))

	w, env := s.do(t, http.MethodGet, "/api/v1/reports?type=presence&from=2025-01-13&to=2025-01-15", "u1", jwt.RoleEmployee, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"day":"2025-01-13","time":0},{"day":"2025-01-14","time":0},{"day":"2025-01-15","time":480}]`, string(env.Data))

	w, env = s.do(t, http.MethodGet, "/api/v1/reports?type=lateness&from=2025-01-15&to=2025-01-15", "u1", jwt.RoleEmployee, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"day":"2025-01-15","lateness":0}]`, string(env.Data))

	w, _ = s.do(t, http.MethodGet, "/api/v1/reports?user_id=u2&type=presence&from=2025-01-13&to=2025-01-15", "u1", jwt.RoleEmployee, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env = s.do(t, http.MethodGet, "/api/v1/reports?type=overtime&from=2025-01-13&to=2025-01-15", "u1", jwt.RoleEmployee, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, env.Error.Details, "type")
}
