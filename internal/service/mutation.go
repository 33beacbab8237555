package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/edu-admin-console/internal/models"
)

const (
	actionCreate     = models.AuditActionCreate
	actionUpdate     = models.AuditActionUpdate
	actionDelete     = models.AuditActionDelete
	actionStatusSave = models.AuditActionStatusSave
)

// recordOutcome reports a finished mutation on every channel: the workspace notices,
// the audit trail and the log.
func recordOutcome(ctx context.Context, notices *Notifier, audit auditRecorder, logger *zap.Logger, resource string, messages mutationMessages, action, id string, err error) {
	var notice models.Notice
	if err != nil {
		notice = notices.Failure(resource, action, err, messages.failure(action))
		logger.Warn("mutation rejected", zap.String("action", action), zap.String("id", id), zap.Error(err))
	} else {
		notice = notices.Success(resource, action, messages.success(action))
	}
	if audit != nil {
		audit.Record(ctx, action, resource, id, err, notice.Message)
	}
}
