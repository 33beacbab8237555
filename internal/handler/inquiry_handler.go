package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edu-admin-console/internal/dto"
	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/pkg/response"
)

// InquiryHandler serves the board-only inquiry routes; the list routes come from a
// ListHandler.
type InquiryHandler struct{}

// NewInquiryHandler constructs the handler.
func NewInquiryHandler() *InquiryHandler {
	return &InquiryHandler{}
}

// Register mounts the board routes on rg.
func (h *InquiryHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/inquiries")
	g.GET("/courses", h.Courses)
	g.PATCH("/:id/status", h.SetStatus)
	g.POST("/:id/status/save", h.SaveStatus)
	g.DELETE("/:id/status", h.DiscardStatus)
}

// SetStatus godoc
// @Summary Change a card's status locally
// @Description The change is shown as pending until saved; nothing is sent upstream
// @Tags Inquiries
// @Accept json
// @Param id path string true "Inquiry ID"
// @Param payload body dto.InquiryStatusRequest true "New status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /inquiries/{id}/status [patch]
func (h *InquiryHandler) SetStatus(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	var req dto.InquiryStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := ws.Inquiries.SetStatus(c.Param("id"), models.InquiryStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}
	renderList(c, view)
}

// SaveStatus godoc
// @Summary Persist a card's pending status
// @Tags Inquiries
// @Param id path string true "Inquiry ID"
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /inquiries/{id}/status/save [post]
func (h *InquiryHandler) SaveStatus(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	view, err := ws.Inquiries.SaveStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	renderList(c, view)
}

// DiscardStatus drops a card's pending status.
func (h *InquiryHandler) DiscardStatus(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	renderList(c, ws.Inquiries.DiscardStatus(c.Param("id")))
}

// Courses lists the course interests offered by the course filter.
func (h *InquiryHandler) Courses(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	ws.Inquiries.View(c.Request.Context())
	response.OK(c, ws.Inquiries.CourseOptions())
}
