// Package postgres provides candidate-batch persistence on PostgreSQL.
package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/config"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/monitoring/logging"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/pkg/errors"
)

// NewPool connects a pgx connection pool using cfg and verifies it with a
// ping.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger logging.Logger) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "invalid database configuration")
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = int32(cfg.MaxConns)
	}
	if cfg.MinConns > 0 {
		pc.MinConns = int32(cfg.MinConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		pc.MaxConnLifetime = cfg.ConnMaxLifetime
	}
	if cfg.ConnMaxIdleTime > 0 {
		pc.MaxConnIdleTime = cfg.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to create connection pool")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "database connection failed")
	}

	logger.Info("connected to postgres",
		logging.String("host", cfg.Host),
		logging.Int("port", cfg.Port),
		logging.String("database", cfg.DBName))
	return pool, nil
}

// schema is applied at startup.  The single table keeps operational surface
// small; migrations become worthwhile once there is more than one.
const schema = `
CREATE TABLE IF NOT EXISTS utterance_batches (
	id                   UUID PRIMARY KEY,
	utterance            TEXT NOT NULL,
	candidates           TEXT[] NOT NULL DEFAULT '{}',
	similarity_threshold DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_utterance_batches_created_at
	ON utterance_batches (created_at DESC);
`

// EnsureSchema creates the batch table when it does not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to apply schema")
	}
	return nil
}
