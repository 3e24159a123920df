package leave

import "context"

type LeaveService interface {
	// Request
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (PeriodResponse, error)
	ApproveLeave(ctx context.Context, id string) error
	DeleteLeave(ctx context.Context, id, requesterID string, isManager bool) error
	ListMyLeaves(ctx context.Context, userID string) ([]PeriodResponse, error)
	// Calendar
	GetCalendar(ctx context.Context, req CalendarRequest) (CalendarResponse, error)
	ListHolidays(ctx context.Context, year int) ([]HolidayResponse, error)
}
