package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const collectionsSchema = `
	CREATE TABLE IF NOT EXISTS collections (
		name VARCHAR(64) PRIMARY KEY,
		data JSONB NOT NULL DEFAULT '[]'::jsonb,
		version BIGINT NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
`

// PostgresBackend stores each collection as one JSONB row and saves a batch in one transaction.
type PostgresBackend struct {
	DB *sqlx.DB
}

func NewPostgresBackend(ctx context.Context, db *sqlx.DB) (*PostgresBackend, error) {
	if _, err := db.ExecContext(ctx, collectionsSchema); err != nil {
		return nil, fmt.Errorf("failed to create collections table: %w", err)
	}
	return &PostgresBackend{DB: db}, nil
}

func (r *PostgresBackend) Load(ctx context.Context, c Collection) ([]byte, error) {
	var data string
	err := r.DB.GetContext(ctx, &data, `SELECT data::text FROM collections WHERE name = $1`, string(c))
	if errors.Is(err, sql.ErrNoRows) {
		return emptyDocument, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", c, err)
	}
	return []byte(data), nil
}

func (r *PostgresBackend) Save(ctx context.Context, docs map[Collection][]byte) error {
	if len(docs) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	upsertQuery := `
		INSERT INTO collections (name, data, version, updated_at)
		VALUES ($1, $2::jsonb, 1, NOW())
		ON CONFLICT (name)
		DO UPDATE SET
			data = EXCLUDED.data,
			version = collections.version + 1,
			updated_at = NOW()
	`
	for c, data := range docs {
		if _, err := tx.ExecContext(ctx, upsertQuery, string(c), string(data)); err != nil {
			return fmt.Errorf("failed to save %s: %w", c, err)
		}
	}

	return tx.Commit()
}

func (r *PostgresBackend) Close() error {
	return r.DB.Close()
}
