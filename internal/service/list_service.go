package service

import (
	"context"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/edu-admin-console/internal/dto"
	"github.com/noah-isme/edu-admin-console/internal/filter"
	"github.com/noah-isme/edu-admin-console/internal/store"
	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
)

// ListView is one render of a filterable list.
type ListView[T any] struct {
	Items []T
	Meta  dto.ListMeta
}

// ListConfig names a list resource.
type ListConfig struct {
	// Resource is the route and audit name, e.g. "courses".
	Resource string
	// Noun is the singular display name used in notices, e.g. "Course".
	Noun string
}

// ListService pairs a store with a filter list for one list view. Calls are applied
// one at a time in arrival order.
type ListService[T store.Keyed, P any] struct {
	mu       sync.Mutex
	cfg      ListConfig
	store    *store.ListStore[T]
	filters  *filter.List[T]
	validate *validator.Validate
	notices  *Notifier
	audit    auditRecorder
	messages mutationMessages
	logger   *zap.Logger
}

// NewListService constructs the service.
func NewListService[T store.Keyed, P any](cfg ListConfig, st *store.ListStore[T], filters *filter.List[T], validate *validator.Validate, notices *Notifier, audit auditRecorder, logger *zap.Logger) *ListService[T, P] {
	if validate == nil {
		validate = dto.NewValidator()
	}
	if notices == nil {
		notices = NewNotifier(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListService[T, P]{
		cfg:      cfg,
		store:    st,
		filters:  filters,
		validate: validate,
		notices:  notices,
		audit:    audit,
		messages: mutationMessages{noun: cfg.Noun},
		logger:   logger.With(zap.String("resource", cfg.Resource)),
	}
}

// Resource returns the resource name.
func (s *ListService[T, P]) Resource() string { return s.cfg.Resource }

// Mount starts a fresh list view: filters cleared and one wholesale load. A fetch
// failure is reported inside the view, not as an error.
func (s *ListService[T, P]) Mount(ctx context.Context) ListView[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Reset()
	s.filters.Clear()
	_ = s.store.Load(ctx)
	return s.view()
}

// View renders the list, loading it first if it was never mounted.
func (s *ListService[T, P]) View(ctx context.Context) ListView[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.Loaded() {
		_ = s.store.Load(ctx)
	}
	return s.view()
}

// Get fetches one item from the upstream.
func (s *ListService[T, P]) Get(ctx context.Context, id string) (*T, error) {
	return s.store.Get(ctx, id)
}

// SetDraft edits the draft filters only; visible items do not change.
func (s *ListService[T, P]) SetDraft(field, value string) (ListView[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.filters.SetDraft(field, value); err != nil {
		return ListView[T]{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	return s.view(), nil
}

// ApplyFilters copies the draft into the applied filters.
func (s *ListService[T, P]) ApplyFilters() ListView[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Apply()
	return s.view()
}

// ClearFilters resets draft and applied filters.
func (s *ListService[T, P]) ClearFilters() ListView[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Clear()
	return s.view()
}

// RevertFilters discards draft edits, restoring the applied filters into the draft.
func (s *ListService[T, P]) RevertFilters() ListView[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Revert()
	return s.view()
}

// Create validates and submits a new item.
func (s *ListService[T, P]) Create(ctx context.Context, payload P) (*T, error) {
	if err := s.validatePayload(payload, true); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	created, err := s.store.Create(ctx, payload)
	id := ""
	if created != nil {
		id = (*created).Key()
	}
	s.outcome(ctx, actionCreate, id, err)
	return created, err
}

// Update validates and fully replaces an item.
func (s *ListService[T, P]) Update(ctx context.Context, id string, payload P) (*T, error) {
	if err := s.validatePayload(payload, false); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	updated, err := s.store.Update(ctx, id, payload)
	s.outcome(ctx, actionUpdate, id, err)
	return updated, err
}

// Delete removes an item; on success the list is reloaded.
func (s *ListService[T, P]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.store.Delete(ctx, id)
	s.outcome(ctx, actionDelete, id, err)
	return err
}

// Reset drops the list and filters, discarding in-flight loads.
func (s *ListService[T, P]) Reset() {
	s.store.Reset()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Clear()
}

func (s *ListService[T, P]) validatePayload(payload P, create bool) error {
	if err := s.validate.Struct(payload); err != nil {
		var invalid *validator.InvalidValidationError
		if !errors.As(err, &invalid) {
			return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, dto.Describe(err))
		}
	}
	if create {
		if cv, ok := any(payload).(dto.CreateValidator); ok {
			if err := cv.ValidateCreate(); err != nil {
				return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
			}
		}
	}
	return nil
}

func (s *ListService[T, P]) outcome(ctx context.Context, action, id string, err error) {
	if errors.Is(err, appErrors.ErrUnsupported) {
		return
	}
	recordOutcome(ctx, s.notices, s.audit, s.logger, s.cfg.Resource, s.messages, action, id, err)
}

func (s *ListService[T, P]) view() ListView[T] {
	snap := s.store.Snapshot()
	visible := s.filters.Visible(snap.Items)
	return ListView[T]{Items: visible, Meta: s.meta(snap, len(visible))}
}

func (s *ListService[T, P]) meta(snap store.Snapshot[T], visible int) dto.ListMeta {
	meta := dto.ListMeta{
		Status:  string(snap.Status),
		Total:   len(snap.Items),
		Visible: visible,
		Fields:  s.filters.Fields(),
		Draft:   s.filters.Draft(),
		Applied: s.filters.Applied(),
	}
	if snap.Err != nil {
		meta.Error = snap.Err.Message
	}
	return meta
}
