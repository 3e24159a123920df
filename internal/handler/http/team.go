package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/team"
	"github.com/cmlabs-hris/attendance-engine/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TeamHandler interface {
	GetAverages(w http.ResponseWriter, r *http.Request)
	GetExpectedHours(w http.ResponseWriter, r *http.Request)
}

type teamHandlerImpl struct {
	teamService team.TeamService
}

func NewTeamHandler(teamService team.TeamService) TeamHandler {
	return &teamHandlerImpl{
		teamService: teamService,
	}
}

func averagesRequest(r *http.Request) team.AveragesRequest {
	return team.AveragesRequest{
		TeamID: chi.URLParam(r, "teamID"),
		From:   r.URL.Query().Get("from"),
		To:     r.URL.Query().Get("to"),
	}
}

// GetAverages implements TeamHandler.
func (h *teamHandlerImpl) GetAverages(w http.ResponseWriter, r *http.Request) {
	averages, err := h.teamService.GetAverages(r.Context(), averagesRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, averages)
}

// GetExpectedHours implements TeamHandler.
func (h *teamHandlerImpl) GetExpectedHours(w http.ResponseWriter, r *http.Request) {
	expected, err := h.teamService.GetExpectedHours(r.Context(), averagesRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, expected)
}
