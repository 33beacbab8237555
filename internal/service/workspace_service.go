package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/edu-admin-console/internal/dto"
	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/internal/store"
)

// WorkspaceDeps are the shared collaborators every workspace is built from.
type WorkspaceDeps struct {
	Schedules     store.Source[models.ClassSession]
	Inquiries     store.Source[models.Inquiry]
	Courses       store.Source[models.Course]
	Users         store.Source[models.User]
	Media         store.Source[models.Media]
	Announcements store.Source[models.Announcement]
	Orders        store.Source[models.Order]
	Payments      store.Source[models.Payment]

	Validator    *validator.Validate
	Audit        auditRecorder
	Location     *time.Location
	NoticeBuffer int
	Logger       *zap.Logger
}

// Workspace is the server-side dashboard state of one administrator.
type Workspace struct {
	Principal     models.Principal
	Notices       *Notifier
	Calendar      *CalendarController
	Sessions      *ListService[models.ClassSession, dto.SessionPayload]
	Inquiries     *InquiryService
	Courses       *ListService[models.Course, dto.CoursePayload]
	Users         *ListService[models.User, dto.UserPayload]
	Media         *ListService[models.Media, dto.MediaPayload]
	Announcements *ListService[models.Announcement, dto.AnnouncementPayload]
	Orders        *ListService[models.Order, dto.NoPayload]
	Payments      *ListService[models.Payment, dto.NoPayload]

	lastSeen atomic.Int64
}

// NewWorkspace builds a fresh workspace. The calendar and the session endpoints share
// one schedule store.
func NewWorkspace(principal models.Principal, deps WorkspaceDeps) *Workspace {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("user_id", principal.Key()))
	validate := deps.Validator
	if validate == nil {
		validate = dto.NewValidator()
	}
	notices := NewNotifier(deps.NoticeBuffer)
	audit := deps.Audit

	schedules := store.NewScheduleStore(deps.Schedules, logger)
	ws := &Workspace{
		Principal: principal,
		Notices:   notices,
		Calendar:  NewCalendarController(schedules, notices, audit, deps.Location, logger),
		Sessions: NewListService[models.ClassSession, dto.SessionPayload](
			ListConfig{Resource: scheduleResource, Noun: "Class"}, schedules, SessionFilters(), validate, notices, audit, logger),
		Inquiries: NewInquiryService(
			store.NewListStore[models.Inquiry]("inquiries", deps.Inquiries, "Fetching failed", logger), validate, notices, audit, logger),
		Courses: NewListService[models.Course, dto.CoursePayload](
			ListConfig{Resource: "courses", Noun: "Course"},
			store.NewListStore[models.Course]("courses", deps.Courses, "Failed to fetch courses", logger),
			CourseFilters(), validate, notices, audit, logger),
		Users: NewListService[models.User, dto.UserPayload](
			ListConfig{Resource: "users", Noun: "User"},
			store.NewListStore[models.User]("users", deps.Users, "Failed to fetch users", logger),
			UserFilters(), validate, notices, audit, logger),
		Media: NewListService[models.Media, dto.MediaPayload](
			ListConfig{Resource: "media", Noun: "Media"},
			store.NewListStore[models.Media]("media", deps.Media, "Failed to fetch media", logger),
			MediaFilters(), validate, notices, audit, logger),
		Announcements: NewListService[models.Announcement, dto.AnnouncementPayload](
			ListConfig{Resource: "announcements", Noun: "Announcement"},
			store.NewListStore[models.Announcement]("announcements", deps.Announcements, "Failed to fetch announcements", logger),
			AnnouncementFilters(), validate, notices, audit, logger),
		Orders: NewListService[models.Order, dto.NoPayload](
			ListConfig{Resource: "orders", Noun: "Order"},
			store.NewListStore[models.Order]("orders", deps.Orders, "Failed to fetch orders", logger),
			OrderFilters(), validate, notices, audit, logger),
		Payments: NewListService[models.Payment, dto.NoPayload](
			ListConfig{Resource: "payments", Noun: "Payment"},
			store.NewListStore[models.Payment]("payments", deps.Payments, "Failed to fetch payments", logger),
			PaymentFilters(), validate, notices, audit, logger),
	}
	ws.touch(time.Now())
	return ws
}

func (w *Workspace) touch(now time.Time) { w.lastSeen.Store(now.UnixNano()) }

// LastSeen is the time of the last request served by the workspace.
func (w *Workspace) LastSeen() time.Time { return time.Unix(0, w.lastSeen.Load()) }

// Close resets every store so that responses still in flight are discarded.
func (w *Workspace) Close() {
	w.Calendar.Reset()
	w.Sessions.Reset()
	w.Inquiries.Reset()
	w.Courses.Reset()
	w.Users.Reset()
	w.Media.Reset()
	w.Announcements.Reset()
	w.Orders.Reset()
	w.Payments.Reset()
	w.Notices.Drain()
}

type workspaceMetrics interface {
	SetActiveWorkspaces(n int)
}

// WorkspaceManager keeps one workspace per administrator and evicts idle ones.
type WorkspaceManager struct {
	mu      sync.Mutex
	items   map[string]*Workspace
	build   func(models.Principal) *Workspace
	idleTTL time.Duration
	metrics workspaceMetrics
	logger  *zap.Logger
	clock   func() time.Time
}

// NewWorkspaceManager constructs the manager. build creates a workspace on first use.
func NewWorkspaceManager(build func(models.Principal) *Workspace, idleTTL time.Duration, metrics workspaceMetrics, logger *zap.Logger) *WorkspaceManager {
	if idleTTL <= 0 {
		idleTTL = 30 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkspaceManager{
		items:   make(map[string]*Workspace),
		build:   build,
		idleTTL: idleTTL,
		metrics: metrics,
		logger:  logger,
		clock:   time.Now,
	}
}

// Acquire returns the workspace of principal, creating it when needed, and marks it used.
func (m *WorkspaceManager) Acquire(principal models.Principal) *Workspace {
	key := principal.Key()
	m.mu.Lock()
	ws, ok := m.items[key]
	if !ok {
		ws = m.build(principal)
		m.items[key] = ws
		m.logger.Debug("workspace created", zap.String("user_id", key))
	}
	ws.touch(m.clock())
	count := len(m.items)
	m.mu.Unlock()

	if !ok && m.metrics != nil {
		m.metrics.SetActiveWorkspaces(count)
	}
	return ws
}

// Release drops the workspace of principal immediately.
func (m *WorkspaceManager) Release(principal models.Principal) {
	m.mu.Lock()
	ws, ok := m.items[principal.Key()]
	delete(m.items, principal.Key())
	count := len(m.items)
	m.mu.Unlock()
	if ok {
		ws.Close()
		if m.metrics != nil {
			m.metrics.SetActiveWorkspaces(count)
		}
	}
}

// Len reports the number of live workspaces.
func (m *WorkspaceManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Sweep evicts workspaces idle for longer than the TTL and returns how many it evicted.
func (m *WorkspaceManager) Sweep() int {
	cutoff := m.clock().Add(-m.idleTTL)
	var evicted []*Workspace
	m.mu.Lock()
	for key, ws := range m.items {
		if ws.LastSeen().Before(cutoff) {
			evicted = append(evicted, ws)
			delete(m.items, key)
		}
	}
	count := len(m.items)
	m.mu.Unlock()

	for _, ws := range evicted {
		ws.Close()
	}
	if len(evicted) > 0 {
		m.logger.Info("workspaces evicted", zap.Int("evicted", len(evicted)), zap.Int("active", count))
		if m.metrics != nil {
			m.metrics.SetActiveWorkspaces(count)
		}
	}
	return len(evicted)
}

// Run sweeps on every tick until ctx is cancelled.
func (m *WorkspaceManager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}
