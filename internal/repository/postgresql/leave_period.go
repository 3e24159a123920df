package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type leavePeriodRepositoryImpl struct {
	db *database.DB
}

const selectLeavePeriod = `
	SELECT lp.id, lp.user_id, lp.start_date, lp.end_date, lp.accepted, lp.created_at, lp.updated_at
	FROM leave_periods lp
`

func scanLeavePeriod(row pgx.Row) (leave.Period, error) {
	var p leave.Period
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.StartDate,
		&p.EndDate,
		&p.Accepted,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func (r *leavePeriodRepositoryImpl) queryPeriods(ctx context.Context, query string, args ...interface{}) ([]leave.Period, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []leave.Period
	for rows.Next() {
		p, err := scanLeavePeriod(rows)
		if err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

// FetchByUser implements leave.PeriodSource.
func (r *leavePeriodRepositoryImpl) FetchByUser(ctx context.Context, userID string) ([]leave.Period, error) {
	return r.queryPeriods(ctx, selectLeavePeriod+`
		WHERE lp.user_id = $1
		ORDER BY lp.start_date, lp.id
	`, userID)
}

// FetchByTeam implements leave.PeriodSource.
func (r *leavePeriodRepositoryImpl) FetchByTeam(ctx context.Context, teamID string) ([]leave.Period, error) {
	return r.queryPeriods(ctx, selectLeavePeriod+`
		INNER JOIN team_members tm ON tm.user_id = lp.user_id
		WHERE tm.team_id = $1
		ORDER BY lp.start_date, lp.id
	`, teamID)
}

// Create implements leave.PeriodRepository.
func (r *leavePeriodRepositoryImpl) Create(ctx context.Context, period leave.Period) (leave.Period, error) {
	q := GetQuerier(ctx, r.db)

	if period.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return leave.Period{}, fmt.Errorf("generate leave period id: %w", err)
		}
		period.ID = id.String()
	}

	query := `
		INSERT INTO leave_periods (id, user_id, start_date, end_date, accepted, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, user_id, start_date, end_date, accepted, created_at, updated_at
	`
	created, err := scanLeavePeriod(q.QueryRow(ctx, query,
		period.ID,
		period.UserID,
		period.StartDate,
		period.EndDate,
		period.Accepted,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// Exclusion violation: a concurrent request inserted an overlapping range first.
			if pgErr.Code == "23P01" && pgErr.ConstraintName == "no_overlapping_leave_periods" {
				return leave.Period{}, fmt.Errorf("%w: another request covers part of %s to %s",
					leave.ErrOverlappingLeave,
					period.StartDate.Format("2006-01-02"),
					period.InclusiveEnd().Format("2006-01-02"),
				)
			}
		}
		return leave.Period{}, err
	}
	return created, nil
}

// GetByID implements leave.PeriodRepository.
func (r *leavePeriodRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Period, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanLeavePeriod(q.QueryRow(ctx, selectLeavePeriod+` WHERE lp.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return leave.Period{}, leave.ErrLeaveNotFound
	}
	return p, err
}

// Accept implements leave.PeriodRepository.
func (r *leavePeriodRepositoryImpl) Accept(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `UPDATE leave_periods SET accepted = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

// Delete implements leave.PeriodRepository.
func (r *leavePeriodRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM leave_periods WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

func NewLeavePeriodRepository(db *database.DB) leave.PeriodRepository {
	return &leavePeriodRepositoryImpl{db: db}
}
