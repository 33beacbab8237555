package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/internal/service"
	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
	"github.com/noah-isme/edu-admin-console/pkg/logger"
	"github.com/noah-isme/edu-admin-console/pkg/middleware/requestid"
	"github.com/noah-isme/edu-admin-console/pkg/response"
	"github.com/noah-isme/edu-admin-console/pkg/upstream"
)

// Context keys set by Session.
const (
	ContextPrincipalKey = "principal"
	ContextWorkspaceKey = "workspace"
	ContextTokenKey     = "access_token"
)

// SessionResolver turns a bearer token into the signed-in administrator.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*models.Principal, error)
}

// WorkspaceProvider hands out the per-administrator workspace.
type WorkspaceProvider interface {
	Acquire(principal models.Principal) *service.Workspace
}

// Session requires a bearer token accepted by the upstream session endpoint and
// attaches the caller's principal and workspace. The token is forwarded on every
// upstream call made with the request context.
func Session(auth SessionResolver, workspaces WorkspaceProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			response.Abort(c, err)
			return
		}

		ctx := upstream.WithToken(c.Request.Context(), token)
		principal, err := auth.Resolve(ctx, token)
		if err != nil {
			response.Abort(c, err)
			return
		}

		ws := workspaces.Acquire(*principal)
		ctx = service.WithActor(ctx, service.Actor{ID: principal.Key(), RequestID: requestid.Value(c)})
		c.Request = c.Request.WithContext(ctx)

		c.Set(ContextPrincipalKey, *principal)
		c.Set(ContextWorkspaceKey, ws)
		c.Set(ContextTokenKey, token)
		c.Set(logger.UserIDKey, principal.Key())
		c.Set(response.NoticeSourceKey, ws.Notices)
		c.Next()
	}
}

// PrincipalFrom returns the principal attached by Session.
func PrincipalFrom(c *gin.Context) (models.Principal, bool) {
	v, ok := c.Get(ContextPrincipalKey)
	if !ok {
		return models.Principal{}, false
	}
	p, ok := v.(models.Principal)
	return p, ok
}

// WorkspaceFrom returns the workspace attached by Session.
func WorkspaceFrom(c *gin.Context) (*service.Workspace, bool) {
	v, ok := c.Get(ContextWorkspaceKey)
	if !ok {
		return nil, false
	}
	ws, ok := v.(*service.Workspace)
	return ws, ok && ws != nil
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", appErrors.ErrUnauthorized
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}
