package memory

import (
	"context"
	"sync"
)

// Transactor serializes units of work. The in-process stores have no rollback.
type Transactor struct {
	mu sync.Mutex
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx)
}
