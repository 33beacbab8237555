package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edu-admin-console/internal/middleware"
	"github.com/noah-isme/edu-admin-console/internal/models"
	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
	"github.com/noah-isme/edu-admin-console/pkg/response"
)

type sessionForgetter interface {
	Forget(ctx context.Context, token string) error
}

type workspaceReleaser interface {
	Release(principal models.Principal)
}

// AuthHandler serves the signed-in administrator's session.
type AuthHandler struct {
	sessions   sessionForgetter
	workspaces workspaceReleaser
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(sessions sessionForgetter, workspaces workspaceReleaser) *AuthHandler {
	return &AuthHandler{sessions: sessions, workspaces: workspaces}
}

// Me godoc
// @Summary Current administrator
// @Description Returns the principal reported by the upstream session endpoint
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	response.OK(c, principal)
}

// Logout godoc
// @Summary Drop the server-side session state
// @Description Forgets the cached session and discards the caller's workspace
// @Tags Authentication
// @Success 204
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if err := h.sessions.Forget(c.Request.Context(), c.GetString(middleware.ContextTokenKey)); err != nil {
		response.Error(c, err)
		return
	}
	h.workspaces.Release(principal)
	response.NoContent(c)
}
