package leave

import "context"

// PeriodSource provides leave periods. Returned periods keep their exclusive EndDate.
type PeriodSource interface {
	FetchByUser(ctx context.Context, userID string) ([]Period, error)
	FetchByTeam(ctx context.Context, teamID string) ([]Period, error)
}

// PeriodRepository - interface for leave_periods table
type PeriodRepository interface {
	PeriodSource
	Create(ctx context.Context, period Period) (Period, error)
	GetByID(ctx context.Context, id string) (Period, error)
	Accept(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// Transactor runs fn so that every repository call made with the ctx it
// receives shares one unit of work.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
