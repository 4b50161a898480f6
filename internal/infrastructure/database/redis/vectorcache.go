package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/embedding"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/monitoring/logging"
)

// nullSentinel marks words known to be absent from the underlying model, so
// repeated lookups of out-of-vocabulary words do not hit the model each time.
const nullSentinel = "__null__"

// Recorder receives cache-effectiveness events.  The monitoring package
// provides the production implementation.
type Recorder interface {
	VectorCacheHit()
	VectorCacheMiss()
}

// VectorCache fronts an embedding model with a Redis read-through cache.
// It implements the same vector-lookup contract as the model it wraps, so the
// generator is oblivious to whether vectors come from memory, Redis, or the
// model file.
type VectorCache struct {
	client   *Client
	source   embedding.Model
	logger   logging.Logger
	prefix   string
	ttl      time.Duration
	nullTTL  time.Duration
	timeout  time.Duration
	jitter   float64
	recorder Recorder
	sf       singleflight.Group
}

// VectorCacheOption customises a VectorCache.
type VectorCacheOption func(*VectorCache)

// WithPrefix sets the key prefix. Defaults to "uttgen:vec:".
func WithPrefix(prefix string) VectorCacheOption {
	return func(c *VectorCache) { c.prefix = prefix }
}

// WithTTL sets the expiry for cached vectors.
func WithTTL(ttl time.Duration) VectorCacheOption {
	return func(c *VectorCache) { c.ttl = ttl }
}

// WithNullTTL sets the expiry for negative entries.
func WithNullTTL(ttl time.Duration) VectorCacheOption {
	return func(c *VectorCache) { c.nullTTL = ttl }
}

// WithTimeout bounds each Redis round trip.
func WithTimeout(d time.Duration) VectorCacheOption {
	return func(c *VectorCache) { c.timeout = d }
}

// WithJitter sets the relative TTL jitter applied on writes.  Zero disables
// jitter.
func WithJitter(fraction float64) VectorCacheOption {
	return func(c *VectorCache) { c.jitter = fraction }
}

// WithRecorder sets the cache-event recorder.
func WithRecorder(r Recorder) VectorCacheOption {
	return func(c *VectorCache) { c.recorder = r }
}

// NewVectorCache builds a read-through vector cache over source.
func NewVectorCache(client *Client, source embedding.Model, logger logging.Logger, opts ...VectorCacheOption) *VectorCache {
	c := &VectorCache{
		client:  client,
		source:  source,
		logger:  logger,
		prefix:  "uttgen:vec:",
		ttl:     24 * time.Hour,
		nullTTL: 30 * time.Minute,
		timeout: 500 * time.Millisecond,
		jitter:  0.1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type lookupResult struct {
	vec []float32
	ok  bool
}

// Vector returns the embedding vector for word, consulting Redis before the
// underlying model.  Redis failures degrade to direct model lookups; a cache
// outage never fails generation.
func (c *VectorCache) Vector(word string) ([]float32, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	key := c.prefix + word
	data, err := c.client.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if string(data) == nullSentinel {
			c.recordHit()
			return nil, false
		}
		var vec []float32
		if jsonErr := json.Unmarshal(data, &vec); jsonErr == nil {
			c.recordHit()
			return vec, true
		}
		c.logger.Warn("corrupt cached vector, refreshing", logging.String("word", word))
	case err != redis.Nil:
		c.logger.Warn("vector cache unavailable", logging.Err(err))
		return c.source.Vector(word)
	}

	c.recordMiss()
	res, _, _ := c.sf.Do(word, func() (interface{}, error) {
		vec, ok := c.source.Vector(word)
		c.store(word, vec, ok)
		return lookupResult{vec: vec, ok: ok}, nil
	})
	lr := res.(lookupResult)
	return lr.vec, lr.ok
}

// store writes the looked-up vector (or a negative entry) back to Redis.
// Write failures are logged and ignored.
func (c *VectorCache) store(word string, vec []float32, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	key := c.prefix + word
	if !ok {
		if err := c.client.rdb.Set(ctx, key, nullSentinel, c.jitterTTL(c.nullTTL)).Err(); err != nil {
			c.logger.Warn("failed to cache negative vector entry", logging.Err(err))
		}
		return
	}

	data, err := json.Marshal(vec)
	if err != nil {
		return
	}
	if err := c.client.rdb.Set(ctx, key, data, c.jitterTTL(c.ttl)).Err(); err != nil {
		c.logger.Warn("failed to cache vector", logging.Err(err))
	}
}

// jitterTTL spreads expiries so a warm cache does not expire all at once.
func (c *VectorCache) jitterTTL(ttl time.Duration) time.Duration {
	if ttl == 0 || c.jitter == 0 {
		return ttl
	}
	spread := float64(ttl) * c.jitter * (rand.Float64()*2 - 1)
	return ttl + time.Duration(spread)
}

func (c *VectorCache) recordHit() {
	if c.recorder != nil {
		c.recorder.VectorCacheHit()
	}
}

func (c *VectorCache) recordMiss() {
	if c.recorder != nil {
		c.recorder.VectorCacheMiss()
	}
}
