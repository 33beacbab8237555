package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/internal/store"
	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
)

type keyed interface {
	store.Keyed
}

// fakeSource is an in-memory upstream collection. Payloads are decoded into T through
// JSON, the way the upstream would receive them.
type fakeSource[T keyed] struct {
	mu        sync.Mutex
	items     []T
	listErr   error
	writeErr  error
	deleteErr error
	lists     int
	updates   []interface{}
	nextID    func() string
}

func newFakeSource[T keyed](items ...T) *fakeSource[T] {
	return &fakeSource[T]{items: items, nextID: func() string { return "new" }}
}

func (f *fakeSource[T]) List(ctx context.Context) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]T(nil), f.items...), nil
}

func (f *fakeSource[T]) Get(ctx context.Context, id string) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.Key() == id {
			found := item
			return &found, nil
		}
	}
	return nil, appErrors.ErrNotFound
}

func (f *fakeSource[T]) Create(ctx context.Context, payload interface{}) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	item, err := decodeAs[T](payload, map[string]interface{}{"_id": f.nextID()})
	if err != nil {
		return nil, err
	}
	f.items = append(f.items, item)
	return &item, nil
}

func (f *fakeSource[T]) Update(ctx context.Context, id string, payload interface{}) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, payload)
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	for i := range f.items {
		if f.items[i].Key() == id {
			item, err := decodeAs[T](payload, map[string]interface{}{"_id": id})
			if err != nil {
				return nil, err
			}
			f.items[i] = item
			return &item, nil
		}
	}
	return nil, appErrors.ErrNotFound
}

func (f *fakeSource[T]) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.items {
		if f.items[i].Key() == id {
			f.items = append(f.items[:i:i], f.items[i+1:]...)
			return nil
		}
	}
	return appErrors.ErrNotFound
}

func decodeAs[T any](payload interface{}, extra map[string]interface{}) (T, error) {
	var out T
	raw, err := json.Marshal(payload)
	if err != nil {
		return out, err
	}
	fields := map[string]interface{}{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return out, err
	}
	for k, v := range extra {
		fields[k] = v
	}
	raw, err = json.Marshal(fields)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}

type auditCall struct {
	action   string
	resource string
	id       string
	failed   bool
	message  string
}

type recordingAudit struct {
	mu    sync.Mutex
	calls []auditCall
}

func (r *recordingAudit) Record(ctx context.Context, action, resource, resourceID string, err error, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, auditCall{action, resource, resourceID, err != nil, message})
}

func classOn(id, date, course string) models.ClassSession {
	return models.ClassSession{ID: id, Date: models.MustParseDate(date), Course: &models.CourseRef{ID: "c-" + id, Title: course}}
}
