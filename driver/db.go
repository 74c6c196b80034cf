// ABOUTME: Database connection pool setup and schema bootstrap
// ABOUTME: Defines the Pool interface so drivers run against pgxpool or a mock
package driver

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"news-remix/config"
)

// Pool is the subset of pgxpool.Pool the drivers use.
type Pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	Ping(ctx context.Context) error
	Close()
}

// InitDB opens a pgx connection pool and verifies connectivity.
func InitDB(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS articles (
	id                  UUID PRIMARY KEY,
	title               TEXT NOT NULL DEFAULT '',
	description         TEXT NOT NULL DEFAULT '',
	content             TEXT NOT NULL DEFAULT '',
	url                 TEXT NOT NULL,
	image_url           TEXT NOT NULL DEFAULT '',
	category            TEXT NOT NULL DEFAULT 'top',
	author              TEXT NOT NULL DEFAULT 'Unknown',
	published_at        TIMESTAMPTZ NOT NULL,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	original_title      TEXT NOT NULL DEFAULT '',
	original_content    TEXT NOT NULL DEFAULT '',
	bias                TEXT NOT NULL DEFAULT '',
	generated_image_url TEXT NOT NULL DEFAULT '',
	explanation         TEXT NOT NULL DEFAULT '',
	audio_data          BYTEA,
	is_processed        BOOLEAN NOT NULL DEFAULT FALSE,
	processing_status   TEXT NOT NULL DEFAULT 'pending',
	processing_error    TEXT NOT NULL DEFAULT ''
);

CREATE UNIQUE INDEX IF NOT EXISTS articles_url_idx ON articles (url);
CREATE INDEX IF NOT EXISTS articles_category_published_idx ON articles (category, published_at DESC);
`

// EnsureSchema creates the articles table and indexes if they do not exist.
func EnsureSchema(ctx context.Context, pool Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
