package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/pkg/config"
	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
	"github.com/noah-isme/edu-admin-console/pkg/jobs"
)

const auditJobType = "audit_log"

type auditRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	List(ctx context.Context, filter models.AuditFilter) ([]models.AuditLog, error)
}

// auditRecorder is what workspace components depend on.
type auditRecorder interface {
	Record(ctx context.Context, action, resource, resourceID string, err error, message string)
}

// AuditService writes the audit trail of dashboard mutations off the request path.
type AuditService struct {
	repo    auditRepository
	queue   *jobs.Queue
	metrics *MetricsService
	logger  *zap.Logger
	enabled bool
}

// NewAuditService constructs the service. A nil repository or disabled config makes
// Record a no-op.
func NewAuditService(repo auditRepository, metrics *MetricsService, cfg config.AuditConfig, logger *zap.Logger) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &AuditService{repo: repo, metrics: metrics, logger: logger, enabled: cfg.Enabled && repo != nil}
	svc.queue = jobs.NewQueue("audit", svc.write, jobs.QueueConfig{
		Workers:    cfg.Workers,
		MaxRetries: cfg.Retries,
		Logger:     logger,
	})
	return svc
}

// Enabled reports whether audit entries are persisted.
func (s *AuditService) Enabled() bool { return s != nil && s.enabled }

// Start launches the writer pool.
func (s *AuditService) Start(ctx context.Context) {
	if s.Enabled() {
		s.queue.Start(ctx)
	}
}

// Stop flushes buffered entries.
func (s *AuditService) Stop() {
	if s.Enabled() {
		s.queue.Stop()
	}
}

// Record queues one entry. Failures to queue are logged and dropped.
func (s *AuditService) Record(ctx context.Context, action, resource, resourceID string, err error, message string) {
	if !s.Enabled() {
		return
	}
	actor := ActorFrom(ctx)
	entry := models.AuditLog{
		ActorID:   actor.ID,
		Action:    action,
		Resource:  resource,
		Outcome:   models.AuditOutcomeSuccess,
		Message:   message,
		RequestID: actor.RequestID,
		CreatedAt: time.Now().UTC(),
	}
	if resourceID != "" {
		id := resourceID
		entry.ResourceID = &id
	}
	if err != nil {
		entry.Outcome = models.AuditOutcomeFailure
	}
	if qerr := s.queue.Enqueue(jobs.Job{Type: auditJobType, Payload: entry}); qerr != nil {
		s.logger.Warn("audit entry dropped", zap.String("action", action), zap.String("resource", resource), zap.Error(qerr))
	}
}

// List returns recent audit entries.
func (s *AuditService) List(ctx context.Context, filter models.AuditFilter) ([]models.AuditLog, error) {
	if !s.Enabled() {
		return nil, appErrors.Clone(appErrors.ErrUnsupported, "audit log is disabled")
	}
	logs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list audit logs")
	}
	return logs, nil
}

func (s *AuditService) write(ctx context.Context, job jobs.Job) error {
	entry, ok := job.Payload.(models.AuditLog)
	if !ok {
		return errors.New("unexpected audit payload")
	}
	start := time.Now()
	err := s.repo.Create(ctx, &entry)
	s.metrics.ObserveAuditWrite(err, time.Since(start))
	return err
}
