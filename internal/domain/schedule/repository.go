package schedule

import "context"

// TeamSource resolves teams and their members.
type TeamSource interface {
	// FetchTeam returns ErrTeamNotFound when the team does not exist.
	FetchTeam(ctx context.Context, teamID string) (Team, error)
	// FetchMembers returns the user IDs belonging to the team.
	FetchMembers(ctx context.Context, teamID string) ([]string, error)
	// FetchTeamOfUser returns ErrTeamNotFound when the user belongs to no team.
	FetchTeamOfUser(ctx context.Context, userID string) (Team, error)
}
