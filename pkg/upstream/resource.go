package upstream

import (
	"context"
	"net/http"
	"net/url"
)

// Resource is a REST collection exposing the usual list/get/create/update/delete verbs.
type Resource[T any] struct {
	client *Client
	path   string
}

// NewResource binds a collection path such as "/schedules".
func NewResource[T any](client *Client, path string) *Resource[T] {
	return &Resource[T]{client: client, path: path}
}

// Path returns the collection path.
func (r *Resource[T]) Path() string { return r.path }

func (r *Resource[T]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

// List fetches the whole collection.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	if err := r.client.Do(ctx, http.MethodGet, r.path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches one item.
func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	var item T
	if err := r.client.Do(ctx, http.MethodGet, r.itemPath(id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create posts a new item. The server assigns the id.
func (r *Resource[T]) Create(ctx context.Context, payload interface{}) (*T, error) {
	var item T
	if err := r.client.Do(ctx, http.MethodPost, r.path, payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces an item in full.
func (r *Resource[T]) Update(ctx context.Context, id string, payload interface{}) (*T, error) {
	var item T
	if err := r.client.Do(ctx, http.MethodPut, r.itemPath(id), payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes an item.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, http.MethodDelete, r.itemPath(id), nil, nil)
}
