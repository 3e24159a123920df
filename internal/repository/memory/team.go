package memory

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/schedule"
)

type TeamStore struct {
	mu      sync.RWMutex
	teams   map[string]schedule.Team
	members map[string][]string
}

func NewTeamStore() *TeamStore {
	return &TeamStore{
		teams:   map[string]schedule.Team{},
		members: map[string][]string{},
	}
}

// Put registers a team and replaces its member list.
func (s *TeamStore) Put(team schedule.Team, members ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[team.ID] = team
	s.members[team.ID] = append([]string(nil), members...)
}

func (s *TeamStore) FetchTeam(ctx context.Context, teamID string) (schedule.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	team, ok := s.teams[teamID]
	if !ok {
		return schedule.Team{}, schedule.ErrTeamNotFound
	}
	return team, nil
}

func (s *TeamStore) FetchMembers(ctx context.Context, teamID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.teams[teamID]; !ok {
		return nil, schedule.ErrTeamNotFound
	}
	return append([]string(nil), s.members[teamID]...), nil
}

func (s *TeamStore) FetchTeamOfUser(ctx context.Context, userID string) (schedule.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for teamID, members := range s.members {
		for _, m := range members {
			if m == userID {
				return s.teams[teamID], nil
			}
		}
	}
	return schedule.Team{}, schedule.ErrTeamNotFound
}
