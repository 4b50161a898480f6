package redis

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/embedding"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/monitoring/logging"
)

type countingRecorder struct {
	hits, misses int
}

func (r *countingRecorder) VectorCacheHit()  { r.hits++ }
func (r *countingRecorder) VectorCacheMiss() { r.misses++ }

func newTestCache(t *testing.T, source embedding.Model, opts ...VectorCacheOption) (*VectorCache, redismock.ClientMock) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	client := &Client{rdb: db, logger: logging.NewNopLogger()}

	opts = append([]VectorCacheOption{
		WithPrefix("test:vec:"),
		WithTTL(time.Hour),
		WithNullTTL(time.Minute),
		WithJitter(0),
	}, opts...)
	cache := NewVectorCache(client, source, logging.NewNopLogger(), opts...)
	return cache, mock
}

func TestVector_CacheHit(t *testing.T) {
	rec := &countingRecorder{}
	cache, mock := newTestCache(t, embedding.MapModel{}, WithRecorder(rec))

	cached, _ := json.Marshal([]float32{0.1, 0.2})
	mock.ExpectGet("test:vec:doctor").SetVal(string(cached))

	vec, ok := cache.Vector("doctor")
	require.True(t, ok)
	assert.Equal(t, []float32{0.1, 0.2}, vec)
	assert.Equal(t, 1, rec.hits)
	assert.Zero(t, rec.misses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVector_NegativeCacheHit(t *testing.T) {
	rec := &countingRecorder{}
	source := embedding.MapModel{"doctor": {1, 0}}
	cache, mock := newTestCache(t, source, WithRecorder(rec))

	mock.ExpectGet("test:vec:doctor").SetVal(nullSentinel)

	// The model has the word, but the negative entry short-circuits.
	_, ok := cache.Vector("doctor")
	assert.False(t, ok)
	assert.Equal(t, 1, rec.hits)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVector_MissLoadsFromSourceAndStores(t *testing.T) {
	rec := &countingRecorder{}
	source := embedding.MapModel{"doctor": {1, 0}}
	cache, mock := newTestCache(t, source, WithRecorder(rec))

	data, _ := json.Marshal([]float32{1, 0})
	mock.ExpectGet("test:vec:doctor").RedisNil()
	mock.ExpectSet("test:vec:doctor", data, time.Hour).SetVal("OK")

	vec, ok := cache.Vector("doctor")
	require.True(t, ok)
	assert.Equal(t, []float32{1, 0}, vec)
	assert.Equal(t, 1, rec.misses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVector_MissUnknownWordStoresNegativeEntry(t *testing.T) {
	cache, mock := newTestCache(t, embedding.MapModel{})

	mock.ExpectGet("test:vec:ghost").RedisNil()
	mock.ExpectSet("test:vec:ghost", nullSentinel, time.Minute).SetVal("OK")

	_, ok := cache.Vector("ghost")
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVector_RedisFailureFallsBackToSource(t *testing.T) {
	source := embedding.MapModel{"doctor": {1, 0}}
	cache, mock := newTestCache(t, source)

	mock.ExpectGet("test:vec:doctor").SetErr(assert.AnError)

	vec, ok := cache.Vector("doctor")
	require.True(t, ok)
	assert.Equal(t, []float32{1, 0}, vec)
}

func TestVector_CorruptEntryRefreshes(t *testing.T) {
	source := embedding.MapModel{"doctor": {1, 0}}
	cache, mock := newTestCache(t, source)

	data, _ := json.Marshal([]float32{1, 0})
	mock.ExpectGet("test:vec:doctor").SetVal("not json")
	mock.ExpectSet("test:vec:doctor", data, time.Hour).SetVal("OK")

	vec, ok := cache.Vector("doctor")
	require.True(t, ok)
	assert.Equal(t, []float32{1, 0}, vec)
	assert.NoError(t, mock.ExpectationsWereMet())
}
