package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edu-admin-console/internal/middleware"
	"github.com/noah-isme/edu-admin-console/internal/models"
	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
	"github.com/noah-isme/edu-admin-console/pkg/response"
)

type auditLister interface {
	List(ctx context.Context, filter models.AuditFilter) ([]models.AuditLog, error)
}

// AuditHandler lists the caller's recorded changes.
type AuditHandler struct {
	audit auditLister
}

// NewAuditHandler constructs the handler.
func NewAuditHandler(audit auditLister) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// List godoc
// @Summary Recent changes
// @Description Audit entries of the signed-in administrator, newest first
// @Tags Audit
// @Produce json
// @Param resource query string false "Resource filter"
// @Param limit query int false "Maximum entries (default 50, max 200)"
// @Success 200 {object} response.Envelope
// @Failure 405 {object} response.Envelope
// @Router /audit-logs [get]
func (h *AuditHandler) List(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	filter := models.AuditFilter{ActorID: principal.Key(), Resource: c.Query("resource")}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "limit must be a positive integer"))
			return
		}
		filter.Limit = limit
	}
	logs, err := h.audit.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	if logs == nil {
		logs = make([]models.AuditLog, 0)
	}
	response.OK(c, logs)
}
