package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"badgeregistry/internal/badge/models"
	"badgeregistry/pkg/platform/sentinel"
	txcontext "badgeregistry/pkg/platform/tx"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// PostgresStore persists the registry in PostgreSQL. Every statement joins
// the transaction carried by the context, if any, so a multi-statement award
// commits or rolls back as one.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed badge store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}

func (s *PostgresStore) CreateBadge(ctx context.Context, badge *models.Badge) error {
	metadata, err := json.Marshal(badge.Metadata)
	if err != nil {
		return fmt.Errorf("marshal badge metadata: %w", err)
	}
	_, err = s.execer(ctx).ExecContext(ctx,
		`INSERT INTO badges (badge_id, metadata, copies) VALUES ($1, $2, $3)`,
		string(badge.ID), metadata, int64(badge.Metadata.Copies))
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert badge: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindBadge(ctx context.Context, id models.BadgeID) (*models.Badge, error) {
	row := s.execer(ctx).QueryRowContext(ctx,
		`SELECT badge_id, metadata, copies FROM badges WHERE badge_id = $1`, string(id))
	badge, err := scanBadge(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find badge: %w", err)
	}
	return badge, nil
}

// FindBadges returns the subset of ids present in the catalog.
func (s *PostgresStore) FindBadges(ctx context.Context, ids []models.BadgeID) (map[models.BadgeID]*models.Badge, error) {
	out := make(map[models.BadgeID]*models.Badge, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = string(id)
	}
	rows, err := s.execer(ctx).QueryContext(ctx,
		`SELECT badge_id, metadata, copies FROM badges WHERE badge_id = ANY($1::text[])`, pq.Array(raw))
	if err != nil {
		return nil, fmt.Errorf("find badges: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		badge, err := scanBadge(rows)
		if err != nil {
			return nil, fmt.Errorf("scan badge: %w", err)
		}
		out[badge.ID] = badge
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate badges: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) CountBadges(ctx context.Context) (int, error) {
	var n int
	if err := s.execer(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM badges`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count badges: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) ListBadges(ctx context.Context, w models.Window) ([]*models.Badge, error) {
	rows, err := s.execer(ctx).QueryContext(ctx,
		`SELECT badge_id, metadata, copies FROM badges ORDER BY seq OFFSET $1 LIMIT $2`,
		w.Offset, sqlLimit(w))
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	defer rows.Close()

	out := []*models.Badge{}
	for rows.Next() {
		badge, err := scanBadge(rows)
		if err != nil {
			return nil, fmt.Errorf("scan badge: %w", err)
		}
		out = append(out, badge)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate badges: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) IsIssued(ctx context.Context, tokenID models.TokenID) (bool, error) {
	var exists bool
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM issued_tokens WHERE token_id = $1)`, string(tokenID)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check issued token: %w", err)
	}
	return exists, nil
}

// RecordAward writes the issued token, the counter increment, the owner index
// row and the outbox entry. Callers run it inside a transaction; on its own
// each statement would commit separately.
func (s *PostgresStore) RecordAward(ctx context.Context, award models.Award) error {
	exec := s.execer(ctx)

	_, err := exec.ExecContext(ctx,
		`INSERT INTO issued_tokens (token_id, badge_id, owner_id) VALUES ($1, $2, $3)`,
		string(award.TokenID), string(award.BadgeID), string(award.OwnerID))
	if err != nil {
		switch pgCode(err) {
		case pgUniqueViolation:
			return sentinel.ErrAlreadyUsed
		case pgForeignKeyViolation:
			return sentinel.ErrNotFound
		}
		return fmt.Errorf("insert issued token: %w", err)
	}

	_, err = exec.ExecContext(ctx,
		`UPDATE badges SET copies = copies + 1 WHERE badge_id = $1`, string(award.BadgeID))
	if err != nil {
		return fmt.Errorf("increment copies: %w", err)
	}

	_, err = exec.ExecContext(ctx,
		`INSERT INTO owner_badges (owner_id, badge_id) VALUES ($1, $2)`,
		string(award.OwnerID), string(award.BadgeID))
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert owner badge: %w", err)
	}

	if award.Event.ID == uuid.Nil {
		return nil
	}
	_, err = exec.ExecContext(ctx,
		`INSERT INTO badge_outbox (id, event_type, event_key, payload, created_at) VALUES ($1, $2, $3, $4, $5)`,
		award.Event.ID, award.Event.EventType, award.Event.Key, award.Event.Payload, award.Event.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert outbox entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) CountTokens(ctx context.Context) (int, error) {
	var n int
	if err := s.execer(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM issued_tokens`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count issued tokens: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) ListIssued(ctx context.Context, w models.Window) ([]models.TokenID, error) {
	rows, err := s.execer(ctx).QueryContext(ctx,
		`SELECT token_id FROM issued_tokens ORDER BY seq OFFSET $1 LIMIT $2`,
		w.Offset, sqlLimit(w))
	if err != nil {
		return nil, fmt.Errorf("list issued tokens: %w", err)
	}
	defer rows.Close()

	out := []models.TokenID{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan issued token: %w", err)
		}
		out = append(out, models.TokenID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate issued tokens: %w", err)
	}
	return out, nil
}

// OwnerBadges returns the owner's badges in award order, or nil for an owner
// with no awards.
func (s *PostgresStore) OwnerBadges(ctx context.Context, owner models.AccountID) ([]models.BadgeID, error) {
	rows, err := s.execer(ctx).QueryContext(ctx,
		`SELECT badge_id FROM owner_badges WHERE owner_id = $1 ORDER BY seq`, string(owner))
	if err != nil {
		return nil, fmt.Errorf("list owner badges: %w", err)
	}
	defer rows.Close()

	var out []models.BadgeID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan owner badge: %w", err)
		}
		out = append(out, models.BadgeID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate owner badges: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) ContractMetadata(ctx context.Context) (*models.ContractMetadata, error) {
	var raw []byte
	err := s.execer(ctx).QueryRowContext(ctx, `SELECT metadata FROM contract_metadata WHERE id = 1`).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find contract metadata: %w", err)
	}
	var m models.ContractMetadata
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("unmarshal contract metadata: %w", err)
	}
	return &m, nil
}

// InitContractMetadata fills the metadata slot once. Later calls are no-ops.
func (s *PostgresStore) InitContractMetadata(ctx context.Context, metadata models.ContractMetadata) error {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("marshal contract metadata: %w", err)
	}
	_, err = s.execer(ctx).ExecContext(ctx,
		`INSERT INTO contract_metadata (id, metadata) VALUES (1, $1) ON CONFLICT (id) DO NOTHING`, raw)
	if err != nil {
		return fmt.Errorf("init contract metadata: %w", err)
	}
	return nil
}

// PendingOutbox returns unpublished entries in commit order.
func (s *PostgresStore) PendingOutbox(ctx context.Context, limit int) ([]models.OutboxEntry, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT id, event_type, event_key, payload, created_at
		FROM badge_outbox
		WHERE published_at IS NULL
		ORDER BY seq
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query pending outbox: %w", err)
	}
	defer rows.Close()

	var out []models.OutboxEntry
	for rows.Next() {
		var e models.OutboxEntry
		if err := rows.Scan(&e.ID, &e.EventType, &e.Key, &e.Payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan outbox entry: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outbox: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}
	_, err := s.execer(ctx).ExecContext(ctx,
		`UPDATE badge_outbox SET published_at = $1 WHERE id = ANY($2::uuid[]) AND published_at IS NULL`,
		at, pq.Array(raw))
	if err != nil {
		return fmt.Errorf("mark outbox published: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBadge(row rowScanner) (*models.Badge, error) {
	var (
		id       string
		metadata []byte
		copies   int64
	)
	if err := row.Scan(&id, &metadata, &copies); err != nil {
		return nil, err
	}
	badge := &models.Badge{ID: models.BadgeID(id)}
	if err := json.Unmarshal(metadata, &badge.Metadata); err != nil {
		return nil, fmt.Errorf("unmarshal badge metadata: %w", err)
	}
	badge.Metadata.Copies = uint64(copies)
	return badge, nil
}

// sqlLimit maps an unbounded window to NULL, which PostgreSQL reads as no limit.
func sqlLimit(w models.Window) any {
	if w.Limit == models.Unbounded {
		return nil
	}
	return w.Limit
}
