package main

import (
	"context"
	"database/sql"
	"time"

	"badgeregistry/internal/badge/service"
	"badgeregistry/internal/badge/store"
	txcontext "badgeregistry/pkg/platform/tx"
)

// badgePostgresTx runs a write inside one sql.Tx. The store picks the
// transaction up from the context, so every statement of an award commits
// or rolls back together. Views run in a read-only snapshot.
type badgePostgresTx struct {
	db      *sql.DB
	store   *store.PostgresStore
	timeout time.Duration
}

func newBadgePostgresTx(db *sql.DB, st *store.PostgresStore, timeout time.Duration) *badgePostgresTx {
	return &badgePostgresTx{db: db, store: st, timeout: timeout}
}

func (t *badgePostgresTx) RunInTx(ctx context.Context, fn func(ctx context.Context, store service.Store) error) error {
	ctx, cancel, err := service.BeginTimeout(ctx, t.timeout)
	if err != nil {
		return err
	}
	defer cancel()

	return txcontext.Run(ctx, t.db, func(ctx context.Context) error {
		return fn(ctx, t.store)
	})
}

func (t *badgePostgresTx) RunInReadTx(ctx context.Context, fn func(ctx context.Context, store service.Store) error) error {
	ctx, cancel, err := service.BeginTimeout(ctx, t.timeout)
	if err != nil {
		return err
	}
	defer cancel()

	return txcontext.RunReadOnly(ctx, t.db, func(ctx context.Context) error {
		return fn(ctx, t.store)
	})
}
