package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/noah-isme/edu-admin-console/internal/models"
	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
	"github.com/noah-isme/edu-admin-console/pkg/upstream"
)

type sessionRepository interface {
	Me(ctx context.Context) (*models.Principal, error)
}

type sessionCache interface {
	Lookup(ctx context.Context, token string, now time.Time) (*models.Principal, bool)
	Store(ctx context.Context, token string, principal models.Principal, now time.Time, ttl time.Duration) error
	Forget(ctx context.Context, token string) error
}

// AuthService resolves bearer tokens into principals. Tokens are issued and verified by
// the upstream; the console only caches the answer of its session endpoint.
type AuthService struct {
	repo   sessionRepository
	cache  sessionCache
	ttl    time.Duration
	logger *zap.Logger
	clock  func() time.Time
}

// NewAuthService constructs the service. cache may be nil.
func NewAuthService(repo sessionRepository, cache sessionCache, ttl time.Duration, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &AuthService{repo: repo, cache: cache, ttl: ttl, logger: logger, clock: time.Now}
}

// Resolve returns the principal owning token, consulting the cache first.
func (s *AuthService) Resolve(ctx context.Context, token string) (*models.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "missing bearer token")
	}
	now := s.clock()
	expiry := tokenExpiry(token)
	if !expiry.IsZero() && !expiry.After(now) {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "token expired")
	}

	if s.cache != nil {
		if principal, ok := s.cache.Lookup(ctx, token, now); ok {
			return principal, nil
		}
	}

	principal, err := s.repo.Me(upstream.WithToken(ctx, token))
	if err != nil {
		if errors.Is(err, appErrors.ErrUnauthorized) || errors.Is(err, appErrors.ErrForbidden) {
			s.logger.Debug("session rejected upstream", zap.Error(err))
			return nil, appErrors.Rebrand(err, appErrors.ErrUnauthorized, "session expired or invalid")
		}
		return nil, err
	}
	if principal.Key() == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "session has no identity")
	}

	ttl := s.ttl
	if !expiry.IsZero() {
		if remaining := expiry.Sub(now); remaining < ttl {
			ttl = remaining
		}
	}
	if s.cache != nil {
		// Store logs its own failures.
		_ = s.cache.Store(ctx, token, *principal, now, ttl)
	}
	return principal, nil
}

// Forget evicts the cached session of token.
func (s *AuthService) Forget(ctx context.Context, token string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Forget(ctx, token)
}

// tokenExpiry reads the exp claim without verifying the signature; the upstream
// remains the authority. Opaque tokens yield the zero time.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
