package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
)

// ClockEventStore keeps punches in process. It is used by tests and local runs.
type ClockEventStore struct {
	mu     sync.RWMutex
	events []attendance.ClockEvent
}

func NewClockEventStore(events ...attendance.ClockEvent) *ClockEventStore {
	return &ClockEventStore{events: append([]attendance.ClockEvent(nil), events...)}
}

// Add appends punches in the given order.
func (s *ClockEventStore) Add(events ...attendance.ClockEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
}

// FetchEvents implements attendance.ClockEventSource. Malformed punches are
// returned as-is so callers exercise their own filtering.
func (s *ClockEventStore) FetchEvents(ctx context.Context, userID string, from, to time.Time) ([]attendance.ClockEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []attendance.ClockEvent
	for _, e := range s.events {
		if e.UserID != userID {
			continue
		}
		if e.Valid() && (e.Timestamp.Before(from) || !e.Timestamp.Before(to)) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
