package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edu-admin-console/internal/middleware"
	"github.com/noah-isme/edu-admin-console/internal/service"
	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
	"github.com/noah-isme/edu-admin-console/pkg/response"
)

// workspace returns the caller's workspace or writes a 401 and reports false.
func workspace(c *gin.Context) (*service.Workspace, bool) {
	ws, ok := middleware.WorkspaceFrom(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return nil, false
	}
	return ws, true
}

// bindJSON decodes the body into dst or writes a 400 and reports false.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return false
	}
	return true
}
