// Package redis provides the Redis-backed word-vector cache that fronts the
// embedding model.
package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/config"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/monitoring/logging"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/pkg/errors"
)

// Client wraps a go-redis client with the application's connection settings.
type Client struct {
	rdb    *redis.Client
	logger logging.Logger
}

// NewClient connects to the Redis instance described by cfg and verifies the
// connection with a ping.
func NewClient(ctx context.Context, cfg config.RedisConfig, logger logging.Logger) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeCacheError, "redis connection failed").WithDetail(cfg.Addr)
	}

	logger.Info("connected to redis", logging.String("addr", cfg.Addr), logging.Int("db", cfg.DB))
	return &Client{rdb: rdb, logger: logger}, nil
}

// Ping checks connection health.
func (c *Client) Ping(ctx context.Context) error {
	return errors.Wrap(c.rdb.Ping(ctx).Err(), errors.ErrCodeCacheError, "redis ping failed")
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}
