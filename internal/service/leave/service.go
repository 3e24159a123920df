package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/calendar"
)

type LeaveServiceImpl struct {
	leave.PeriodRepository
	tx leave.Transactor
}

// CreateLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.PeriodResponse{}, err
	}

	candidate := req.Range()
	var created leave.Period

	err := l.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := l.PeriodRepository.FetchByUser(ctx, req.UserID)
		if err != nil {
			return fmt.Errorf("failed to fetch leave periods: %w", err)
		}

		if conflict, found := FindOverlap(candidate, existing); found {
			slog.Debug("Rejected overlapping leave request", "user_id", req.UserID, "conflict_id", conflict.ID)
			return fmt.Errorf("%w: already requested from %s to %s",
				leave.ErrOverlappingLeave,
				conflict.StartDate.Format("2006-01-02"),
				conflict.InclusiveEnd().Format("2006-01-02"),
			)
		}

		accepted := false
		created, err = l.PeriodRepository.Create(ctx, leave.Period{
			UserID:    req.UserID,
			StartDate: candidate.Start,
			EndDate:   candidate.End.AddDate(0, 0, 1),
			Accepted:  &accepted,
		})
		if errors.Is(err, leave.ErrOverlappingLeave) {
			slog.Debug("Rejected overlapping leave request at insert", "user_id", req.UserID)
			return err
		}
		if err != nil {
			return fmt.Errorf("failed to create leave period: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.PeriodResponse{}, err
	}

	return leave.NewPeriodResponse(created), nil
}

// ApproveLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) ApproveLeave(ctx context.Context, id string) error {
	period, err := l.PeriodRepository.GetByID(ctx, id)
	if err != nil {
		return l.wrapLookup(err)
	}

	if period.IsAccepted() {
		return leave.ErrLeaveAlreadyHandled
	}

	if err := l.PeriodRepository.Accept(ctx, id); err != nil {
		return fmt.Errorf("failed to accept leave period: %w", err)
	}
	return nil
}

// DeleteLeave implements leave.LeaveService. Deleting is also how a manager rejects a request.
func (l *LeaveServiceImpl) DeleteLeave(ctx context.Context, id, requesterID string, isManager bool) error {
	period, err := l.PeriodRepository.GetByID(ctx, id)
	if err != nil {
		return l.wrapLookup(err)
	}

	if !isManager && period.UserID != requesterID {
		return leave.ErrNotLeaveOwner
	}

	if err := l.PeriodRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete leave period: %w", err)
	}
	return nil
}

// ListMyLeaves implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMyLeaves(ctx context.Context, userID string) ([]leave.PeriodResponse, error) {
	periods, err := l.PeriodRepository.FetchByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leave periods: %w", err)
	}

	resp := make([]leave.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		resp = append(resp, leave.NewPeriodResponse(p))
	}
	return resp, nil
}

// GetCalendar implements leave.LeaveService.
func (l *LeaveServiceImpl) GetCalendar(ctx context.Context, req leave.CalendarRequest) (leave.CalendarResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.CalendarResponse{}, err
	}

	periods, err := l.PeriodRepository.FetchByUser(ctx, req.UserID)
	if err != nil {
		return leave.CalendarResponse{}, fmt.Errorf("failed to fetch leave periods: %w", err)
	}

	days := MonthCalendar(req.Year, time.Month(req.Month), periods)
	resp := leave.CalendarResponse{
		UserID: req.UserID,
		Year:   req.Year,
		Month:  req.Month,
		Days:   make([]leave.CalendarDayState, 0, len(days)),
	}
	for _, d := range days {
		resp.Days = append(resp.Days, leave.CalendarDayState{CalendarDay: d, State: d.State()})
	}
	return resp, nil
}

// ListHolidays implements leave.LeaveService.
func (l *LeaveServiceImpl) ListHolidays(ctx context.Context, year int) ([]leave.HolidayResponse, error) {
	return leave.NewHolidayResponses(calendar.Holidays(year)), nil
}

func (l *LeaveServiceImpl) wrapLookup(err error) error {
	if errors.Is(err, leave.ErrLeaveNotFound) {
		return leave.ErrLeaveNotFound
	}
	return fmt.Errorf("failed to get leave period: %w", err)
}

func NewLeaveService(periodRepository leave.PeriodRepository, tx leave.Transactor) leave.LeaveService {
	return &LeaveServiceImpl{
		PeriodRepository: periodRepository,
		tx:               tx,
	}
}
