package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-engine/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-engine/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	CreateLeave(w http.ResponseWriter, r *http.Request)
	GetMyLeaves(w http.ResponseWriter, r *http.Request)
	ApproveLeave(w http.ResponseWriter, r *http.Request)
	DeleteLeave(w http.ResponseWriter, r *http.Request)

	GetCalendar(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// CreateLeave implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateLeave(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Debug("Failed to decode leave request", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.UserID = middleware.UserID(r.Context())

	created, err := l.leaveService.CreateLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created", created)
}

// GetMyLeaves implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyLeaves(w http.ResponseWriter, r *http.Request) {
	periods, err := l.leaveService.ListMyLeaves(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, periods)
}

// ApproveLeave implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := leaveIDFromURL(w, r)
	if !ok {
		return
	}

	if err := l.leaveService.ApproveLeave(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", nil)
}

// DeleteLeave implements LeaveHandler.
func (l *LeaveHandlerImpl) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := leaveIDFromURL(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	if err := l.leaveService.DeleteLeave(ctx, id, middleware.UserID(ctx), middleware.IsManager(ctx)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted", nil)
}

// GetCalendar implements LeaveHandler.
func (l *LeaveHandlerImpl) GetCalendar(w http.ResponseWriter, r *http.Request) {
	userID, ok := subjectFromURL(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	year, errYear := strconv.Atoi(query.Get("year"))
	month, errMonth := strconv.Atoi(query.Get("month"))
	if errYear != nil || errMonth != nil {
		response.BadRequest(w, "year and month must be numeric", nil)
		return
	}

	cal, err := l.leaveService.GetCalendar(r.Context(), leave.CalendarRequest{UserID: userID, Year: year, Month: month})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cal)
}

// ListHolidays implements LeaveHandler.
func (l *LeaveHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	yearParam := chi.URLParam(r, "year")
	if !validator.IsNumeric(yearParam) || len(yearParam) != 4 {
		response.BadRequest(w, "year must be a four-digit number", nil)
		return
	}
	year, _ := strconv.Atoi(yearParam)

	holidays, err := l.leaveService.ListHolidays(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

func leaveIDFromURL(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Leave ID must be a valid UUID", nil)
		return "", false
	}
	return id, true
}
