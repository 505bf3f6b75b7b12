package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/logging"
)

// Database holds the database connection pool
type Database struct {
	Pool *pgxpool.Pool
}

// NewDatabase connects with the default retry policy
func NewDatabase(ctx context.Context, dsn string, maxRetries int) (*Database, error) {
	return NewDatabaseWithRetry(ctx, dsn, maxRetries, time.Second)
}

// NewDatabaseWithRetry creates a connection pool, retrying with exponential backoff
// so a cold-starting serverless database does not fail the process.
func NewDatabaseWithRetry(ctx context.Context, dsn string, maxRetries int, initialDelay time.Duration) (*Database, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid database dsn: %w", err)
	}
	if maxRetries < 1 {
		maxRetries = 1
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 0
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	// Simple protocol keeps transaction poolers happy
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	var pool *pgxpool.Pool
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		logging.LogKV("info", "catalog db connect", map[string]interface{}{
			"attempt": attempt,
			"max":     maxRetries,
			"host":    poolConfig.ConnConfig.Host,
			"user":    poolConfig.ConnConfig.User,
		})

		pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			lastErr = fmt.Errorf("failed to create connection pool: %w", err)
		} else {
			pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			err = pool.Ping(pingCtx)
			cancel()
			if err == nil {
				break
			}
			lastErr = fmt.Errorf("failed to ping database: %w", err)
			pool.Close()
			pool = nil
		}

		logging.LogKV("warn", "catalog db connect failed", map[string]interface{}{
			"attempt": attempt,
			"error":   lastErr.Error(),
		})
		if attempt < maxRetries {
			// 1s, 2s, 4s, ...
			delay := initialDelay * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	if pool == nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, lastErr)
	}

	logging.LogKV("info", "catalog db connected", nil)
	return &Database{Pool: pool}, nil
}

// Close closes the database connection pool
func (db *Database) Close() {
	if db.Pool != nil {
		db.Pool.Close()
		logging.LogKV("info", "catalog db pool closed", nil)
	}
}

// Health checks if the database is healthy
func (db *Database) Health(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS request_categories (
		category_id TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		department  TEXT NOT NULL,
		sort_order  INTEGER NOT NULL DEFAULT 0
	);`,
	`CREATE TABLE IF NOT EXISTS request_products (
		product_id        TEXT PRIMARY KEY,
		category_id       TEXT NOT NULL REFERENCES request_categories(category_id) ON DELETE CASCADE,
		name              TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		tat               TEXT NOT NULL DEFAULT '',
		languages         TEXT[] NOT NULL DEFAULT '{}',
		current_inventory INTEGER NOT NULL DEFAULT 0 CHECK (current_inventory >= 0),
		rate              NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (rate >= 0),
		sort_order        INTEGER NOT NULL DEFAULT 0
	);`,
	`CREATE INDEX IF NOT EXISTS idx_request_categories_department ON request_categories(department);`,
	`CREATE INDEX IF NOT EXISTS idx_request_products_category ON request_products(category_id);`,
}

// InitSchema creates the catalog tables if they do not exist
func (db *Database) InitSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema init: %w", err)
		}
	}
	return nil
}
