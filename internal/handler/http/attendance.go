package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetShifts(w http.ResponseWriter, r *http.Request)
	GetDailyHours(w http.ResponseWriter, r *http.Request)
	GetWeeklyHours(w http.ResponseWriter, r *http.Request)
	GetLateness(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

func windowRequest(r *http.Request, userID string) attendance.WindowRequest {
	return attendance.WindowRequest{
		UserID: userID,
		From:   r.URL.Query().Get("from"),
		To:     r.URL.Query().Get("to"),
	}
}

// GetShifts implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetShifts(w http.ResponseWriter, r *http.Request) {
	userID, ok := subjectFromURL(w, r)
	if !ok {
		return
	}

	shifts, err := h.attendanceService.GetShifts(r.Context(), windowRequest(r, userID))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// GetDailyHours implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetDailyHours(w http.ResponseWriter, r *http.Request) {
	userID, ok := subjectFromURL(w, r)
	if !ok {
		return
	}

	daily, err := h.attendanceService.GetDailyHours(r.Context(), windowRequest(r, userID))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, daily)
}

// GetWeeklyHours implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetWeeklyHours(w http.ResponseWriter, r *http.Request) {
	userID, ok := subjectFromURL(w, r)
	if !ok {
		return
	}

	weekly, err := h.attendanceService.GetWeeklyHours(r.Context(), windowRequest(r, userID))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, weekly)
}

// GetLateness implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetLateness(w http.ResponseWriter, r *http.Request) {
	userID, ok := subjectFromURL(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	req := attendance.LatenessRequest{
		UserID: userID,
		Day:    query.Get("day"),
		Mode:   attendance.LatenessMode(query.Get("mode")),
	}
	if teamID := query.Get("team_id"); teamID != "" {
		req.TeamID = &teamID
	}

	verdict, err := h.attendanceService.EvaluateLateness(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, verdict)
}
