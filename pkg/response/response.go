package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edu-admin-console/internal/models"
	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
)

// NoticeSourceKey is the gin context key of the caller's notice queue.
const NoticeSourceKey = "notice_source"

// NoticeSource hands out undelivered notices exactly once.
type NoticeSource interface {
	Drain() []models.Notice
}

// Envelope represents the common response contract.
type Envelope struct {
	Data    interface{}      `json:"data,omitempty"`
	Error   *appErrors.Error `json:"error,omitempty"`
	Meta    interface{}      `json:"meta,omitempty"`
	Notices []models.Notice  `json:"notices,omitempty"`
}

// JSON sends a success response. Pending notices of the caller ride along.
func JSON(c *gin.Context, status int, data interface{}, meta interface{}) {
	noStore(c)
	c.JSON(status, Envelope{Data: data, Meta: meta, Notices: drain(c)})
}

// OK responds with HTTP 200 and no meta.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data, nil)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data, nil)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	noStore(c)
	c.JSON(appErr.Status, Envelope{Error: appErr, Notices: drain(c)})
}

// Abort is Error followed by c.Abort, for middleware.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// File sends a download.
func File(c *gin.Context, name, contentType string, body []byte) {
	noStore(c)
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, contentType, body)
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}

func drain(c *gin.Context) []models.Notice {
	v, ok := c.Get(NoticeSourceKey)
	if !ok {
		return nil
	}
	src, ok := v.(NoticeSource)
	if !ok {
		return nil
	}
	notices := src.Drain()
	if len(notices) == 0 {
		return nil
	}
	return notices
}
