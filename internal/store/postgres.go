package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool used by Postgres.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	createSnapshotTable = `CREATE TABLE IF NOT EXISTS cart_snapshots (
	key        TEXT PRIMARY KEY,
	payload    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

	selectSnapshot = `SELECT payload FROM cart_snapshots WHERE key = $1`

	upsertSnapshot = `INSERT INTO cart_snapshots (key, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
)

// Postgres stores each key as one row of cart_snapshots.
type Postgres struct {
	db DBTX
}

// NewPostgres wraps a pool or connection.
func NewPostgres(db DBTX) *Postgres {
	return &Postgres{db: db}
}

// EnsureSchema creates the snapshot table if it does not exist.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, createSnapshotTable); err != nil {
		return fmt.Errorf("create cart_snapshots: %w", err)
	}
	return nil
}

func (p *Postgres) Load(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := p.db.QueryRow(ctx, selectSnapshot, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", key, err)
	}
	return payload, nil
}

func (p *Postgres) Save(ctx context.Context, key string, data []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	if _, err := p.db.Exec(ctx, upsertSnapshot, key, string(data)); err != nil {
		return fmt.Errorf("save snapshot %q: %w", key, err)
	}
	return nil
}
