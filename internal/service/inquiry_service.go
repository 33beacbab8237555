package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/edu-admin-console/internal/dto"
	"github.com/noah-isme/edu-admin-console/internal/filter"
	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/internal/store"
	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
)

const inquiryResource = "inquiries"

// InquiryFilters are the filters of the admission inquiry board.
func InquiryFilters() *filter.List[models.Inquiry] {
	return filter.New(
		filter.Text("status", filter.KindExact, func(i models.Inquiry) string { return string(i.Status) }),
		filter.Text("courseInterest", filter.KindExact, func(i models.Inquiry) string { return i.CourseInterest }),
		filter.Timestamp("date", func(i models.Inquiry) time.Time { return i.CreatedAt }),
	)
}

// InquiryService is the admission inquiry board. Status changes are held as local
// drafts, shown as pending, until explicitly saved or discarded.
type InquiryService struct {
	list   *ListService[models.Inquiry, dto.InquiryPayload]
	drafts map[string]models.InquiryStatus
}

// NewInquiryService constructs the board over an inquiry store.
func NewInquiryService(st *store.ListStore[models.Inquiry], validate *validator.Validate, notices *Notifier, audit auditRecorder, logger *zap.Logger) *InquiryService {
	list := NewListService[models.Inquiry, dto.InquiryPayload](ListConfig{Resource: inquiryResource, Noun: "Inquiry"}, st, InquiryFilters(), validate, notices, audit, logger)
	return &InquiryService{list: list, drafts: make(map[string]models.InquiryStatus)}
}

// Resource returns the resource name.
func (s *InquiryService) Resource() string { return inquiryResource }

// Mount clears filters and reloads. Unsaved status drafts are kept.
func (s *InquiryService) Mount(ctx context.Context) ListView[models.InquiryCard] {
	s.list.mu.Lock()
	defer s.list.mu.Unlock()
	s.list.store.Reset()
	s.list.filters.Clear()
	_ = s.list.store.Load(ctx)
	return s.board()
}

// View renders the board, loading it first if needed.
func (s *InquiryService) View(ctx context.Context) ListView[models.InquiryCard] {
	s.list.mu.Lock()
	defer s.list.mu.Unlock()
	if !s.list.store.Loaded() {
		_ = s.list.store.Load(ctx)
	}
	return s.board()
}

// SetDraft edits one draft filter value; the board is unchanged until Apply.
func (s *InquiryService) SetDraft(field, value string) (ListView[models.InquiryCard], error) {
	s.list.mu.Lock()
	defer s.list.mu.Unlock()
	if err := s.list.filters.SetDraft(field, value); err != nil {
		return ListView[models.InquiryCard]{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	return s.board(), nil
}

// ApplyFilters copies the draft filters onto the board.
func (s *InquiryService) ApplyFilters() ListView[models.InquiryCard] {
	return s.withLock(s.list.filters.Apply)
}

// ClearFilters empties both the draft and the applied filters.
func (s *InquiryService) ClearFilters() ListView[models.InquiryCard] {
	return s.withLock(s.list.filters.Clear)
}

// RevertFilters discards draft edits, restoring the applied values.
func (s *InquiryService) RevertFilters() ListView[models.InquiryCard] {
	return s.withLock(s.list.filters.Revert)
}

// SetStatus changes a card's status locally. No upstream call is made and the
// applied filters are not re-applied from the draft.
func (s *InquiryService) SetStatus(id string, status models.InquiryStatus) (ListView[models.InquiryCard], error) {
	if !status.Valid() {
		return ListView[models.InquiryCard]{}, appErrors.Clone(appErrors.ErrValidation, "status must be one of pending, approved, rejected, waitlisted")
	}
	s.list.mu.Lock()
	defer s.list.mu.Unlock()
	inquiry, ok := s.list.store.Find(id)
	if !ok {
		return ListView[models.InquiryCard]{}, appErrors.Clone(appErrors.ErrNotFound, "inquiry not found")
	}
	if status == inquiry.Status {
		delete(s.drafts, id)
	} else {
		s.drafts[id] = status
	}
	return s.board(), nil
}

// DiscardStatus drops the local status draft of a card.
func (s *InquiryService) DiscardStatus(id string) ListView[models.InquiryCard] {
	return s.withLock(func() { delete(s.drafts, id) })
}

// SaveStatus persists a card's draft status with a full replace of the inquiry, then
// reloads the board.
func (s *InquiryService) SaveStatus(ctx context.Context, id string) (ListView[models.InquiryCard], error) {
	s.list.mu.Lock()
	defer s.list.mu.Unlock()
	status, ok := s.drafts[id]
	if !ok {
		return ListView[models.InquiryCard]{}, appErrors.Clone(appErrors.ErrValidation, "inquiry has no unsaved status")
	}
	inquiry, ok := s.list.store.Find(id)
	if !ok {
		delete(s.drafts, id)
		return ListView[models.InquiryCard]{}, appErrors.Clone(appErrors.ErrNotFound, "inquiry not found")
	}
	inquiry.Status = status
	_, err := s.list.store.Update(ctx, id, inquiry)
	if err == nil {
		delete(s.drafts, id)
	}
	recordOutcome(ctx, s.list.notices, s.list.audit, s.list.logger, inquiryResource, s.list.messages, actionStatusSave, id, err)
	return s.board(), err
}

// PendingCount is the number of cards with unsaved status changes.
func (s *InquiryService) PendingCount() int {
	s.list.mu.Lock()
	defer s.list.mu.Unlock()
	s.pruneDrafts()
	return len(s.drafts)
}

// CourseOptions lists the distinct course interests of all inquiries, in first-seen order.
func (s *InquiryService) CourseOptions() []string {
	seen := make(map[string]bool)
	options := make([]string, 0)
	for _, inquiry := range s.list.store.Snapshot().Items {
		if inquiry.CourseInterest == "" || seen[inquiry.CourseInterest] {
			continue
		}
		seen[inquiry.CourseInterest] = true
		options = append(options, inquiry.CourseInterest)
	}
	return options
}

// Get fetches a single inquiry from the upstream.
func (s *InquiryService) Get(ctx context.Context, id string) (*models.Inquiry, error) {
	return s.list.Get(ctx, id)
}

// Create records a manually entered inquiry.
func (s *InquiryService) Create(ctx context.Context, payload dto.InquiryPayload) (*models.Inquiry, error) {
	if payload.Status == "" {
		payload.Status = string(models.InquiryStatusPending)
	}
	return s.list.Create(ctx, payload)
}

// Update fully replaces an inquiry and reloads the board.
func (s *InquiryService) Update(ctx context.Context, id string, payload dto.InquiryPayload) (*models.Inquiry, error) {
	return s.list.Update(ctx, id, payload)
}

// Delete removes an inquiry and reloads the board.
func (s *InquiryService) Delete(ctx context.Context, id string) error {
	return s.list.Delete(ctx, id)
}

// Reset drops the board, its filters and every draft.
func (s *InquiryService) Reset() {
	s.list.Reset()
	s.list.mu.Lock()
	defer s.list.mu.Unlock()
	s.drafts = make(map[string]models.InquiryStatus)
}

func (s *InquiryService) withLock(fn func()) ListView[models.InquiryCard] {
	s.list.mu.Lock()
	defer s.list.mu.Unlock()
	fn()
	return s.board()
}

// pruneDrafts forgets drafts of inquiries that are gone or already carry the drafted
// status. Nothing is pruned until the board has loaded successfully.
func (s *InquiryService) pruneDrafts() {
	snap := s.list.store.Snapshot()
	if snap.Status != models.LoadStatusReady {
		return
	}
	current := make(map[string]models.InquiryStatus, len(snap.Items))
	for _, inquiry := range snap.Items {
		current[inquiry.ID] = inquiry.Status
	}
	for id, status := range s.drafts {
		if persisted, ok := current[id]; !ok || persisted == status {
			delete(s.drafts, id)
		}
	}
}

// board overlays drafts on the persisted inquiries and filters on the shown status.
func (s *InquiryService) board() ListView[models.InquiryCard] {
	s.pruneDrafts()
	snap := s.list.store.Snapshot()
	cards := make([]models.InquiryCard, 0, len(snap.Items))
	for _, inquiry := range snap.Items {
		card := models.InquiryCard{Inquiry: inquiry, PersistedStatus: inquiry.Status}
		if status, ok := s.drafts[inquiry.ID]; ok {
			card.Status = status
			card.PendingSave = true
		}
		if s.list.filters.Matches(card.Inquiry) {
			cards = append(cards, card)
		}
	}
	meta := s.list.meta(snap, len(cards))
	meta.Pending = len(s.drafts)
	return ListView[models.InquiryCard]{Items: cards, Meta: meta}
}
