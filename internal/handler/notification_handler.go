package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edu-admin-console/pkg/response"
)

// NotificationHandler hands out the caller's undelivered notices.
type NotificationHandler struct{}

// NewNotificationHandler constructs the handler.
func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// Drain godoc
// @Summary Pending notices
// @Description Returns and clears the outcome messages of recent changes
// @Tags Notifications
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /notifications [get]
func (h *NotificationHandler) Drain(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	response.OK(c, ws.Notices.Drain())
}
