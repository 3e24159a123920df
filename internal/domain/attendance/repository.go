package attendance

import (
	"context"
	"time"
)

// ClockEventSource provides the raw punches of a user. Returned events are not ordered.
type ClockEventSource interface {
	// FetchEvents returns every punch of userID whose timestamp falls in [from, to).
	FetchEvents(ctx context.Context, userID string, from, to time.Time) ([]ClockEvent, error)
}
