package service

import (
	"context"
	"encoding/hex"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"

	"github.com/noah-isme/edu-admin-console/internal/models"
	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
)

const sessionKeyPrefix = "session:"

// CacheRepository abstracts the key-value backend of the session cache.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// SessionCache remembers which principal a bearer token resolved to. Keys are token
// digests; raw tokens never reach the backend. A cache without a repository misses
// every lookup.
type SessionCache struct {
	repo    CacheRepository
	metrics *MetricsService
	logger  *zap.Logger
}

// NewSessionCache constructs the cache. repo may be nil.
func NewSessionCache(repo CacheRepository, metrics *MetricsService, logger *zap.Logger) *SessionCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionCache{repo: repo, metrics: metrics, logger: logger.With(zap.String("component", "session_cache"))}
}

// Enabled reports whether a backend is configured.
func (s *SessionCache) Enabled() bool {
	return s != nil && s.repo != nil
}

// Lookup returns the cached principal of token if its entry is still valid at now.
// Backend failures count as misses.
func (s *SessionCache) Lookup(ctx context.Context, token string, now time.Time) (*models.Principal, bool) {
	if !s.Enabled() {
		return nil, false
	}
	start := time.Now()
	var entry models.SessionEntry
	err := s.repo.Get(ctx, sessionKey(token), &entry)
	duration := time.Since(start)
	if err != nil {
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("session lookup failed", zap.Error(err))
		}
		s.metrics.RecordCacheOperation(false, duration)
		return nil, false
	}
	if !entry.ExpiresAt.After(now) {
		s.metrics.RecordCacheOperation(false, duration)
		return nil, false
	}
	s.metrics.RecordCacheOperation(true, duration)
	return &entry.Principal, true
}

// Store caches principal for token until now+ttl.
func (s *SessionCache) Store(ctx context.Context, token string, principal models.Principal, now time.Time, ttl time.Duration) error {
	if !s.Enabled() || ttl <= 0 {
		return nil
	}
	entry := models.SessionEntry{Principal: principal, ExpiresAt: now.Add(ttl)}
	start := time.Now()
	err := s.repo.Set(ctx, sessionKey(token), entry, ttl)
	s.metrics.ObserveCacheWrite(time.Since(start))
	if err != nil {
		s.logger.Warn("session store failed", zap.String("user_id", principal.Key()), zap.Error(err))
	}
	return err
}

// Forget drops the cached entry of token.
func (s *SessionCache) Forget(ctx context.Context, token string) error {
	if !s.Enabled() {
		return nil
	}
	if err := s.repo.Delete(ctx, sessionKey(token)); err != nil {
		s.logger.Warn("session evict failed", zap.Error(err))
		return err
	}
	return nil
}

func sessionKey(token string) string {
	sum := blake2b.Sum256([]byte(token))
	return sessionKeyPrefix + hex.EncodeToString(sum[:])
}
