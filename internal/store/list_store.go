// Package store holds the canonical, server-fetched lists of the admin console.
// Every list is owned by exactly one store and only changes in response to a
// completed upstream request.
package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/edu-admin-console/internal/models"
	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
)

// Keyed items expose their server-assigned id.
type Keyed interface {
	Key() string
}

// Source lists a whole collection.
type Source[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// Getter fetches one item by id.
type Getter[T any] interface {
	Get(ctx context.Context, id string) (*T, error)
}

// Writer creates and fully replaces items.
type Writer[T any] interface {
	Create(ctx context.Context, payload interface{}) (*T, error)
	Update(ctx context.Context, id string, payload interface{}) (*T, error)
}

// Deleter removes items.
type Deleter interface {
	Delete(ctx context.Context, id string) error
}

// Snapshot is a consistent copy of a store's state.
type Snapshot[T any] struct {
	Items    []T
	Status   models.LoadStatus
	Err      *appErrors.Error
	LoadedAt time.Time
}

// ListStore owns one collection. Mutations round-trip through the upstream and are
// followed by a wholesale reload; the list is never patched locally.
type ListStore[T Keyed] struct {
	name         string
	fetchMessage string
	src          Source[T]
	logger       *zap.Logger
	clock        func() time.Time

	mu         sync.RWMutex
	items      []T
	status     models.LoadStatus
	err        *appErrors.Error
	loadedAt   time.Time
	generation uint64
}

// NewListStore constructs a store. fetchMessage is the static message shown when
// loading fails.
func NewListStore[T Keyed](name string, src Source[T], fetchMessage string, logger *zap.Logger) *ListStore[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fetchMessage == "" {
		fetchMessage = appErrors.ErrFetchFailed.Message
	}
	return &ListStore[T]{
		name:         name,
		fetchMessage: fetchMessage,
		src:          src,
		logger:       logger.With(zap.String("store", name)),
		clock:        time.Now,
		status:       models.LoadStatusIdle,
	}
}

// Name returns the resource name of the store.
func (s *ListStore[T]) Name() string { return s.name }

// Load replaces the list with a fresh fetch. On failure the list is emptied and the
// failure is retained; partial data is never kept. Only the most recently started
// load is applied; responses superseded by a later load or a Reset are discarded.
func (s *ListStore[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	gen := s.generation + 1
	s.generation = gen
	s.status = models.LoadStatusLoading
	s.mu.Unlock()

	items, err := s.src.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.logger.Debug("discarding stale load")
		return nil
	}
	if err != nil {
		s.items = nil
		s.status = models.LoadStatusFailed
		s.err = appErrors.Rebrand(err, appErrors.ErrFetchFailed, s.fetchMessage)
		s.logger.Warn("load failed", zap.Error(err))
		return s.err
	}
	if items == nil {
		items = make([]T, 0)
	}
	s.items = items
	s.status = models.LoadStatusReady
	s.err = nil
	s.loadedAt = s.clock()
	return nil
}

// Loaded reports whether the store has completed at least one load since its last reset.
func (s *ListStore[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status == models.LoadStatusReady || s.status == models.LoadStatusFailed
}

// Snapshot returns a copy of the current state.
func (s *ListStore[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]T, len(s.items))
	copy(items, s.items)
	return Snapshot[T]{Items: items, Status: s.status, Err: s.err, LoadedAt: s.loadedAt}
}

// Find returns the locally held item with the given id.
func (s *ListStore[T]) Find(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.Key() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Get fetches one item from the upstream without touching the list.
func (s *ListStore[T]) Get(ctx context.Context, id string) (*T, error) {
	getter, ok := s.src.(Getter[T])
	if !ok {
		return nil, appErrors.ErrUnsupported
	}
	return getter.Get(ctx, id)
}

// Create submits a new item and reloads the list.
func (s *ListStore[T]) Create(ctx context.Context, payload interface{}) (*T, error) {
	writer, ok := s.src.(Writer[T])
	if !ok {
		return nil, appErrors.ErrUnsupported
	}
	created, err := writer.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.reloadAfterMutation(ctx)
	return created, nil
}

// Update fully replaces an item and reloads the list.
func (s *ListStore[T]) Update(ctx context.Context, id string, payload interface{}) (*T, error) {
	writer, ok := s.src.(Writer[T])
	if !ok {
		return nil, appErrors.ErrUnsupported
	}
	updated, err := writer.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.reloadAfterMutation(ctx)
	return updated, nil
}

// Delete removes an item upstream and, on success, reloads the list. On failure the
// list is left untouched.
func (s *ListStore[T]) Delete(ctx context.Context, id string) error {
	deleter, ok := s.src.(Deleter)
	if !ok {
		return appErrors.ErrUnsupported
	}
	if err := deleter.Delete(ctx, id); err != nil {
		return err
	}
	s.reloadAfterMutation(ctx)
	return nil
}

// Reset drops the list and invalidates in-flight loads.
func (s *ListStore[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.items = nil
	s.status = models.LoadStatusIdle
	s.err = nil
	s.loadedAt = time.Time{}
}

// A failed reload leaves the store in its failed state; the mutation itself succeeded.
func (s *ListStore[T]) reloadAfterMutation(ctx context.Context) {
	if err := s.Load(ctx); err != nil {
		s.logger.Warn("reload after mutation failed", zap.Error(err))
	}
}
