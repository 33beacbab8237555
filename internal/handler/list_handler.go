package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edu-admin-console/internal/dto"
	"github.com/noah-isme/edu-admin-console/internal/service"
	"github.com/noah-isme/edu-admin-console/pkg/response"
)

// ListEndpoint is a filterable list rendering items of type V.
type ListEndpoint[V any] interface {
	Mount(ctx context.Context) service.ListView[V]
	View(ctx context.Context) service.ListView[V]
	SetDraft(field, value string) (service.ListView[V], error)
	ApplyFilters() service.ListView[V]
	ClearFilters() service.ListView[V]
	RevertFilters() service.ListView[V]
}

// ItemEndpoint reads and writes single items of type T from payloads of type P.
type ItemEndpoint[T, P any] interface {
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, payload P) (*T, error)
	Update(ctx context.Context, id string, payload P) (*T, error)
	Delete(ctx context.Context, id string) error
}

// Endpoint is a list together with its item operations.
type Endpoint[V, T, P any] interface {
	ListEndpoint[V]
	ItemEndpoint[T, P]
}

// ListHandler serves one list resource of the caller's workspace.
type ListHandler[V, T, P any] struct {
	resource string
	pick     func(*service.Workspace) Endpoint[V, T, P]
	writable bool
}

// NewListHandler constructs a handler. pick selects the resource in a workspace;
// read-only resources get no write routes.
func NewListHandler[V, T, P any](resource string, pick func(*service.Workspace) Endpoint[V, T, P], writable bool) *ListHandler[V, T, P] {
	return &ListHandler[V, T, P]{resource: resource, pick: pick, writable: writable}
}

// Resource returns the route segment of the list.
func (h *ListHandler[V, T, P]) Resource() string { return h.resource }

// Register mounts the list routes on rg.
func (h *ListHandler[V, T, P]) Register(rg *gin.RouterGroup) {
	g := rg.Group("/" + h.resource)
	g.POST("/mount", h.Mount)
	g.GET("", h.List)
	g.PUT("/filters/draft", h.SetDraft)
	g.POST("/filters/apply", h.Apply)
	g.POST("/filters/revert", h.Revert)
	g.DELETE("/filters", h.Clear)
	g.GET("/:id", h.Get)
	if h.writable {
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
}

func (h *ListHandler[V, T, P]) endpoint(c *gin.Context) (Endpoint[V, T, P], bool) {
	ws, ok := workspace(c)
	if !ok {
		return nil, false
	}
	return h.pick(ws), true
}

func renderList[V any](c *gin.Context, view service.ListView[V]) {
	items := view.Items
	if items == nil {
		items = make([]V, 0)
	}
	response.JSON(c, http.StatusOK, items, view.Meta)
}

// Mount godoc
// @Summary Open a list
// @Description Clears filters and reloads the whole list from upstream
// @Tags Lists
// @Produce json
// @Param resource path string true "inquiries, courses, users, media, announcements, orders, payments or sessions"
// @Success 200 {object} response.Envelope
// @Router /{resource}/mount [post]
func (h *ListHandler[V, T, P]) Mount(c *gin.Context) {
	if ep, ok := h.endpoint(c); ok {
		renderList(c, ep.Mount(c.Request.Context()))
	}
}

// List godoc
// @Summary Render a list with the applied filters
// @Tags Lists
// @Produce json
// @Param resource path string true "Resource"
// @Success 200 {object} response.Envelope
// @Router /{resource} [get]
func (h *ListHandler[V, T, P]) List(c *gin.Context) {
	if ep, ok := h.endpoint(c); ok {
		renderList(c, ep.View(c.Request.Context()))
	}
}

// SetDraft godoc
// @Summary Edit a draft filter
// @Description Changes the draft only; visible items change on apply
// @Tags Lists
// @Accept json
// @Param resource path string true "Resource"
// @Param payload body dto.FilterDraftRequest true "Field and value"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /{resource}/filters/draft [put]
func (h *ListHandler[V, T, P]) SetDraft(c *gin.Context) {
	ep, ok := h.endpoint(c)
	if !ok {
		return
	}
	var req dto.FilterDraftRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := ep.SetDraft(req.Field, req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	renderList(c, view)
}

// Apply godoc
// @Tags Lists
// @Router /{resource}/filters/apply [post]
func (h *ListHandler[V, T, P]) Apply(c *gin.Context) {
	if ep, ok := h.endpoint(c); ok {
		renderList(c, ep.ApplyFilters())
	}
}

// Revert godoc
// @Tags Lists
// @Router /{resource}/filters/revert [post]
func (h *ListHandler[V, T, P]) Revert(c *gin.Context) {
	if ep, ok := h.endpoint(c); ok {
		renderList(c, ep.RevertFilters())
	}
}

// Clear godoc
// @Tags Lists
// @Router /{resource}/filters [delete]
func (h *ListHandler[V, T, P]) Clear(c *gin.Context) {
	if ep, ok := h.endpoint(c); ok {
		renderList(c, ep.ClearFilters())
	}
}

// Get godoc
// @Summary Fetch one item from upstream
// @Tags Lists
// @Param resource path string true "Resource"
// @Param id path string true "Item ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /{resource}/{id} [get]
func (h *ListHandler[V, T, P]) Get(c *gin.Context) {
	ep, ok := h.endpoint(c)
	if !ok {
		return
	}
	item, err := ep.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item)
}

// Create godoc
// @Summary Create an item
// @Tags Lists
// @Accept json
// @Param resource path string true "Resource"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /{resource} [post]
func (h *ListHandler[V, T, P]) Create(c *gin.Context) {
	ep, ok := h.endpoint(c)
	if !ok {
		return
	}
	var payload P
	if !bindJSON(c, &payload) {
		return
	}
	item, err := ep.Create(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// @Summary Replace an item
// @Tags Lists
// @Accept json
// @Param resource path string true "Resource"
// @Param id path string true "Item ID"
// @Success 200 {object} response.Envelope
// @Router /{resource}/{id} [put]
func (h *ListHandler[V, T, P]) Update(c *gin.Context) {
	ep, ok := h.endpoint(c)
	if !ok {
		return
	}
	var payload P
	if !bindJSON(c, &payload) {
		return
	}
	item, err := ep.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item)
}

// Delete godoc
// @Summary Delete an item
// @Tags Lists
// @Param resource path string true "Resource"
// @Param id path string true "Item ID"
// @Success 200 {object} response.Envelope
// @Router /{resource}/{id} [delete]
func (h *ListHandler[V, T, P]) Delete(c *gin.Context) {
	ep, ok := h.endpoint(c)
	if !ok {
		return
	}
	if err := ep.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, nil, nil)
}
