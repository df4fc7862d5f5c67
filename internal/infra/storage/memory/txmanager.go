package memory

import (
	"context"
	"sync"
)

// TxManager serializes booking transactions for the in-memory store.
// A single mutex around each check-and-insert sequence gives the same
// guarantee the SERIALIZABLE transaction gives in Postgres mode: two
// concurrent requests for the same window cannot both pass the overlap
// check.
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager creates a transaction manager for memory mode.
func NewTxManager() *TxManager {
	return &TxManager{}
}

// Do runs fn under the booking mutex.
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// DoSerializable runs fn under the booking mutex.
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// DoReadOnly runs fn without locking, reads are safe concurrently.
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
