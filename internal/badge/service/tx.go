package service

import (
	"context"
	"sync"
	"time"

	dErrors "badgeregistry/pkg/domain-errors"
)

// StoreTx provides the transactional boundary for catalog and ledger access.
// Implementations wrap a database transaction or, in memory, a single lock
// that serializes writers.
//
// RunInReadTx gives fn a stable view: no write commits between the reads it
// makes.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error
	RunInReadTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error
}

// DefaultTxTimeout bounds a write whose context carries no deadline.
const DefaultTxTimeout = 5 * time.Second

type inMemoryTx struct {
	mu      sync.RWMutex
	store   Store
	timeout time.Duration
}

// NewInMemoryTx serializes writers over store and holds them off while a
// read transaction runs. Store calls are individually atomic, so a rejected
// write performs no mutation before returning.
func NewInMemoryTx(store Store) StoreTx {
	return &inMemoryTx{store: store, timeout: DefaultTxTimeout}
}

func (t *inMemoryTx) RunInTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error {
	ctx, cancel, err := BeginTimeout(ctx, t.timeout)
	if err != nil {
		return err
	}
	defer cancel()

	t.mu.Lock()
	defer t.mu.Unlock()

	// Check again after acquiring lock
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	return fn(ctx, t.store)
}

func (t *inMemoryTx) RunInReadTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error {
	ctx, cancel, err := BeginTimeout(ctx, t.timeout)
	if err != nil {
		return err
	}
	defer cancel()

	t.mu.RLock()
	defer t.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	return fn(ctx, t.store)
}

// BeginTimeout rejects an already-cancelled context and applies timeout when
// ctx has no deadline. Transaction implementations call it before starting.
func BeginTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc, error) {
	if err := ctx.Err(); err != nil {
		return ctx, func() {}, dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	if timeout <= 0 {
		timeout = DefaultTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, cancel, nil
}
