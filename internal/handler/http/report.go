package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/report"
	"github.com/cmlabs-hris/attendance-engine/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-engine/internal/handler/http/response"
)

type ReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Generate implements ReportHandler.
func (h *reportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	userID := query.Get("user_id")
	if userID == "" {
		userID = middleware.UserID(ctx)
	}
	if userID != middleware.UserID(ctx) && !middleware.IsManager(ctx) {
		response.Forbidden(w, "Cannot access another user's report")
		return
	}

	resp, err := h.reportService.Generate(ctx, report.ReportRequest{
		UserID:     userID,
		ReportType: report.ReportType(query.Get("type")),
		From:       query.Get("from"),
		To:         query.Get("to"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	switch resp.ReportType {
	case report.ReportTypeLateness:
		response.Success(w, resp.Lateness)
	default:
		response.Success(w, resp.Presence)
	}
}
