package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type teamRepositoryImpl struct {
	db *database.DB
}

const selectTeam = `
	SELECT t.id, t.name, t.start_hour, t.end_hour, t.day_off
	FROM teams t
`

func scanTeam(row pgx.Row) (schedule.Team, error) {
	var (
		t      schedule.Team
		dayOff []time.Time
	)
	if err := row.Scan(&t.ID, &t.Name, &t.StartHour, &t.EndHour, &dayOff); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Team{}, schedule.ErrTeamNotFound
		}
		return schedule.Team{}, err
	}

	t.DayOff = make([]string, 0, len(dayOff))
	for _, d := range dayOff {
		t.DayOff = append(t.DayOff, d.Format("2006-01-02"))
	}
	return t, nil
}

// FetchTeam implements schedule.TeamSource.
func (r *teamRepositoryImpl) FetchTeam(ctx context.Context, teamID string) (schedule.Team, error) {
	q := GetQuerier(ctx, r.db)
	return scanTeam(q.QueryRow(ctx, selectTeam+` WHERE t.id = $1`, teamID))
}

// FetchTeamOfUser implements schedule.TeamSource. A user in several teams gets the first by id.
func (r *teamRepositoryImpl) FetchTeamOfUser(ctx context.Context, userID string) (schedule.Team, error) {
	q := GetQuerier(ctx, r.db)
	query := selectTeam + `
		INNER JOIN team_members tm ON tm.team_id = t.id
		WHERE tm.user_id = $1
		ORDER BY t.id
		LIMIT 1
	`
	return scanTeam(q.QueryRow(ctx, query, userID))
}

// FetchMembers implements schedule.TeamSource.
func (r *teamRepositoryImpl) FetchMembers(ctx context.Context, teamID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM teams WHERE id = $1)`, teamID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, schedule.ErrTeamNotFound
	}

	rows, err := q.Query(ctx, `SELECT user_id FROM team_members WHERE team_id = $1 ORDER BY user_id`, teamID)
	if err != nil {
		return nil, err
	}
	members, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	return members, nil
}

func NewTeamRepository(db *database.DB) schedule.TeamSource {
	return &teamRepositoryImpl{db: db}
}
