package postgresql

import (
	"context"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/database"
)

type clockEventRepositoryImpl struct {
	db *database.DB
}

// FetchEvents implements attendance.ClockEventSource. Rows are returned in storage order.
func (r *clockEventRepositoryImpl) FetchEvents(ctx context.Context, userID string, from, to time.Time) ([]attendance.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, clocked_at
		FROM clock_events
		WHERE user_id = $1 AND clocked_at >= $2 AND clocked_at < $3
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []attendance.ClockEvent
	for rows.Next() {
		var e attendance.ClockEvent
		if err := rows.Scan(&e.ID, &e.UserID, &e.Timestamp); err != nil {
			return nil, err
		}
		e.Timestamp = e.Timestamp.UTC()
		events = append(events, e)
	}
	return events, rows.Err()
}

// Record stores a punch and returns it with its generated ID.
func (r *clockEventRepositoryImpl) Record(ctx context.Context, userID string, at time.Time) (attendance.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clock_events (user_id, clocked_at)
		VALUES ($1, $2)
		RETURNING id, user_id, clocked_at
	`

	var e attendance.ClockEvent
	if err := q.QueryRow(ctx, query, userID, at).Scan(&e.ID, &e.UserID, &e.Timestamp); err != nil {
		return attendance.ClockEvent{}, err
	}
	e.Timestamp = e.Timestamp.UTC()
	return e, nil
}

type ClockEventRepository interface {
	attendance.ClockEventSource
	Record(ctx context.Context, userID string, at time.Time) (attendance.ClockEvent, error)
}

func NewClockEventRepository(db *database.DB) ClockEventRepository {
	return &clockEventRepositoryImpl{db: db}
}
