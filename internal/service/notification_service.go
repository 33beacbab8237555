package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/pkg/upstream"
)

const defaultNoticeBuffer = 50

// Notifier is a workspace's queue of user-visible mutation outcomes. When full, the
// oldest notice is dropped.
type Notifier struct {
	mu     sync.Mutex
	queue  []models.Notice
	limit  int
	clock  func() time.Time
	nextID func() string
}

// NewNotifier constructs a notifier holding at most limit notices.
func NewNotifier(limit int) *Notifier {
	if limit <= 0 {
		limit = defaultNoticeBuffer
	}
	return &Notifier{limit: limit, clock: time.Now, nextID: uuid.NewString}
}

// Success queues a success notice.
func (n *Notifier) Success(resource, action, message string) models.Notice {
	return n.push(models.NoticeSuccess, resource, action, message)
}

// Failure queues an error notice. The upstream's own reason wins over fallback.
func (n *Notifier) Failure(resource, action string, err error, fallback string) models.Notice {
	message := upstream.Reason(err)
	if message == "" {
		message = fallback
	}
	return n.push(models.NoticeError, resource, action, message)
}

func (n *Notifier) push(level models.NoticeLevel, resource, action, message string) models.Notice {
	notice := models.Notice{
		ID:        n.nextID(),
		Level:     level,
		Resource:  resource,
		Action:    action,
		Message:   message,
		CreatedAt: n.clock().UTC(),
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.queue) >= n.limit {
		n.queue = n.queue[len(n.queue)-n.limit+1:]
	}
	n.queue = append(n.queue, notice)
	return notice
}

// Drain returns queued notices oldest first and empties the queue.
func (n *Notifier) Drain() []models.Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.queue
	n.queue = nil
	if out == nil {
		out = make([]models.Notice, 0)
	}
	return out
}

// Pending reports the number of undelivered notices.
func (n *Notifier) Pending() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.queue)
}

// mutationMessages builds the toast texts for one resource, e.g. "Class deleted
// successfully" and "Failed to delete class".
type mutationMessages struct {
	noun string
}

func (m mutationMessages) success(action string) string {
	return fmt.Sprintf("%s %s successfully", m.noun, pastTense(action))
}

func (m mutationMessages) failure(action string) string {
	return fmt.Sprintf("Failed to %s %s", verb(action), strings.ToLower(m.noun))
}

func pastTense(action string) string {
	switch action {
	case models.AuditActionCreate:
		return "created"
	case models.AuditActionUpdate, models.AuditActionStatusSave:
		return "updated"
	case models.AuditActionDelete:
		return "deleted"
	default:
		return strings.ToLower(action)
	}
}

func verb(action string) string {
	switch action {
	case models.AuditActionCreate:
		return "create"
	case models.AuditActionUpdate, models.AuditActionStatusSave:
		return "update"
	case models.AuditActionDelete:
		return "delete"
	default:
		return strings.ToLower(action)
	}
}
