package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure PostgresStore implements DocumentStore.
var _ DocumentStore = (*PostgresStore)(nil)

// PostgresStore keeps each collection as one jsonb document in a single row.
// The application reads and replaces whole collections, never individual rows.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a PostgreSQL-backed document store and ensures the
// backing table exists.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	const ddl = `
		CREATE TABLE IF NOT EXISTS collections (
			name       text PRIMARY KEY,
			document   jsonb NOT NULL,
			updated_at timestamptz NOT NULL
		)`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return nil, fmt.Errorf("postgres: ensure collections table: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Read(ctx context.Context, name string) ([]byte, error) {
	const query = `SELECT document FROM collections WHERE name = $1`

	var doc []byte
	err := s.pool.QueryRow(ctx, query, name).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: read collection %s: %w", name, err)
	}
	return doc, nil
}

func (s *PostgresStore) Write(ctx context.Context, name string, doc []byte) error {
	const query = `
		INSERT INTO collections (name, document, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`

	if _, err := s.pool.Exec(ctx, query, name, doc, time.Now().UTC()); err != nil {
		return fmt.Errorf("postgres: write collection %s: %w", name, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
