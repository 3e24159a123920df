package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/leave"
	"github.com/google/uuid"
)

type LeavePeriodStore struct {
	mu      sync.RWMutex
	periods map[string]leave.Period
	teams   *TeamStore
}

// NewLeavePeriodStore creates an empty store. teams resolves FetchByTeam and may be nil.
func NewLeavePeriodStore(teams *TeamStore) *LeavePeriodStore {
	return &LeavePeriodStore{
		periods: map[string]leave.Period{},
		teams:   teams,
	}
}

func (s *LeavePeriodStore) Create(ctx context.Context, period leave.Period) (leave.Period, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if period.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return leave.Period{}, err
		}
		period.ID = id.String()
	}
	if period.CreatedAt.IsZero() {
		period.CreatedAt = time.Now().UTC()
	}
	s.periods[period.ID] = period
	return period, nil
}

func (s *LeavePeriodStore) GetByID(ctx context.Context, id string) (leave.Period, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.periods[id]
	if !ok {
		return leave.Period{}, leave.ErrLeaveNotFound
	}
	return p, nil
}

func (s *LeavePeriodStore) Accept(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.periods[id]
	if !ok {
		return leave.ErrLeaveNotFound
	}
	accepted := true
	now := time.Now().UTC()
	p.Accepted = &accepted
	p.UpdatedAt = &now
	s.periods[id] = p
	return nil
}

func (s *LeavePeriodStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.periods[id]; !ok {
		return leave.ErrLeaveNotFound
	}
	delete(s.periods, id)
	return nil
}

func (s *LeavePeriodStore) FetchByUser(ctx context.Context, userID string) ([]leave.Period, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []leave.Period
	for _, p := range s.periods {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sortPeriods(out)
	return out, nil
}

func (s *LeavePeriodStore) FetchByTeam(ctx context.Context, teamID string) ([]leave.Period, error) {
	if s.teams == nil {
		return nil, nil
	}
	members, err := s.teams.FetchMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	inTeam := make(map[string]bool, len(members))
	for _, m := range members {
		inTeam[m] = true
	}

	var out []leave.Period
	for _, p := range s.periods {
		if inTeam[p.UserID] {
			out = append(out, p)
		}
	}
	sortPeriods(out)
	return out, nil
}

func sortPeriods(periods []leave.Period) {
	sort.Slice(periods, func(i, j int) bool {
		if !periods[i].StartDate.Equal(periods[j].StartDate) {
			return periods[i].StartDate.Before(periods[j].StartDate)
		}
		return periods[i].ID < periods[j].ID
	})
}
