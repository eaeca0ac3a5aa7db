package memory

import (
	"context"
	"sync"
)

// TxManager serializes units of work against the memory stores. It stands
// in for the PostgreSQL transaction manager when no database is configured.
// Calls must not nest.
type TxManager struct {
	mu sync.Mutex
}

// RunInTx runs fn while holding the lock.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
