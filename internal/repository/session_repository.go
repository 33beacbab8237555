package repository

import (
	"context"
	"net/http"

	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/pkg/upstream"
)

// SessionRepository resolves bearer tokens through the upstream session endpoint.
type SessionRepository struct {
	client *upstream.Client
}

// NewSessionRepository constructs the repository.
func NewSessionRepository(client *upstream.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

// Me returns the principal owning the token carried by ctx.
func (r *SessionRepository) Me(ctx context.Context) (*models.Principal, error) {
	var principal models.Principal
	if err := r.client.Do(ctx, http.MethodGet, "/auth/me", nil, &principal); err != nil {
		return nil, err
	}
	return &principal, nil
}
