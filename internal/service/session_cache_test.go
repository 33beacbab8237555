package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edu-admin-console/internal/models"
	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
)

type memoryCacheRepo struct {
	mu     sync.Mutex
	values map[string][]byte
	ttls   map[string]time.Duration
	getErr error
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{values: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (r *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return r.getErr
	}
	raw, ok := r.values[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (r *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = raw
	r.ttls[key] = ttl
	return nil
}

func (r *memoryCacheRepo) Delete(ctx context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range keys {
		delete(r.values, key)
	}
	return nil
}

func TestSessionCacheRoundTripAndMetrics(t *testing.T) {
	repo := newMemoryCacheRepo()
	metrics := NewMetricsService()
	cache := NewSessionCache(repo, metrics, nil)
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	_, ok := cache.Lookup(ctx, "tok", now)
	assert.False(t, ok)

	require.NoError(t, cache.Store(ctx, "tok", models.Principal{ID: "admin-1"}, now, time.Minute))
	require.Len(t, repo.ttls, 1)
	for key, ttl := range repo.ttls {
		assert.NotContains(t, key, "tok")
		assert.Equal(t, time.Minute, ttl)
	}

	principal, ok := cache.Lookup(ctx, "tok", now.Add(30*time.Second))
	require.True(t, ok)
	assert.Equal(t, "admin-1", principal.ID)

	require.NoError(t, cache.Forget(ctx, "tok"))
	_, ok = cache.Lookup(ctx, "tok", now)
	assert.False(t, ok)

	snap := metrics.Snapshot()
	assert.Equal(t, uint64(1), snap.CacheHits)
	assert.Equal(t, uint64(2), snap.CacheMisses)
}

func TestSessionCacheIgnoresExpiredEntries(t *testing.T) {
	repo := newMemoryCacheRepo()
	cache := NewSessionCache(repo, nil, nil)
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	require.NoError(t, cache.Store(context.Background(), "tok", models.Principal{ID: "admin-1"}, now, time.Minute))
	_, ok := cache.Lookup(context.Background(), "tok", now.Add(2*time.Minute))

	assert.False(t, ok)
}

func TestSessionCacheWithoutBackendAlwaysMisses(t *testing.T) {
	cache := NewSessionCache(nil, nil, nil)

	require.NoError(t, cache.Store(context.Background(), "tok", models.Principal{ID: "admin-1"}, time.Now(), time.Minute))
	_, ok := cache.Lookup(context.Background(), "tok", time.Now())

	assert.False(t, ok)
	assert.False(t, cache.Enabled())
}

func TestSessionCacheTreatsBackendErrorsAsMiss(t *testing.T) {
	repo := newMemoryCacheRepo()
	repo.getErr = errors.New("connection reset")
	cache := NewSessionCache(repo, nil, nil)

	_, ok := cache.Lookup(context.Background(), "tok", time.Now())

	assert.False(t, ok)
}
