package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PgDocumentStore implementa DocumentStore sobre una tabla documents usando pgxpool.
type PgDocumentStore struct {
	db pgQuerier
}

func NewPgDocumentStore(pool *pgxpool.Pool) *PgDocumentStore {
	return &PgDocumentStore{db: pool}
}

// EnsureSchema crea la tabla si no existe.
func (s *PgDocumentStore) EnsureSchema(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS documents (
			key        TEXT PRIMARY KEY,
			body       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	_, err := s.db.Exec(ctx, query)
	return err
}

func (s *PgDocumentStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const query = `
		SELECT body::text
		FROM documents
		WHERE key = $1
	`
	var body string
	err := s.db.QueryRow(ctx, query, key).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(body), true, nil
}

func (s *PgDocumentStore) Put(ctx context.Context, key string, body []byte) error {
	const query = `
		INSERT INTO documents (key, body, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE
		SET body = EXCLUDED.body,
		    updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.Exec(ctx, query, key, string(body))
	return err
}
