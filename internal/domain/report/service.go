package report

import "context"

type ReportService interface {
	// Generate builds a presence or lateness report, one entry per working day
	Generate(ctx context.Context, req ReportRequest) (ReportResponse, error)
}
