package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edu-admin-console/internal/dto"
	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/internal/service"
	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
	"github.com/noah-isme/edu-admin-console/pkg/response"
)

// CalendarHandler exposes the live-classes calendar of the caller's workspace.
type CalendarHandler struct {
	export *service.ExportService
}

// NewCalendarHandler constructs a calendar handler.
func NewCalendarHandler(export *service.ExportService) *CalendarHandler {
	return &CalendarHandler{export: export}
}

// Register mounts the calendar routes on rg.
func (h *CalendarHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/calendar")
	g.POST("/mount", h.Mount)
	g.GET("", h.View)
	g.POST("/toggle", h.Toggle)
	g.POST("/today", h.Today)
	g.POST("/prev", h.Prev)
	g.POST("/next", h.Next)
	g.POST("/select", h.Select)
	g.DELETE("/sessions/:id", h.DeleteSession)
	g.GET("/export", h.Export)
}

// Mount godoc
// @Summary Open the calendar
// @Description Resets the calendar to the current week and reloads every session
// @Tags Calendar
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /calendar/mount [post]
func (h *CalendarHandler) Mount(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	response.OK(c, ws.Calendar.Mount(c.Request.Context()))
}

// View godoc
// @Summary Render the calendar
// @Tags Calendar
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /calendar [get]
func (h *CalendarHandler) View(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	response.OK(c, ws.Calendar.View(c.Request.Context()))
}

// Toggle switches between week and month.
// @Tags Calendar
// @Router /calendar/toggle [post]
func (h *CalendarHandler) Toggle(c *gin.Context) {
	h.navigate(c, (*service.CalendarController).ToggleViewMode)
}

// Today godoc
// @Tags Calendar
// @Router /calendar/today [post]
func (h *CalendarHandler) Today(c *gin.Context) {
	h.navigate(c, (*service.CalendarController).Today)
}

// Prev godoc
// @Tags Calendar
// @Router /calendar/prev [post]
func (h *CalendarHandler) Prev(c *gin.Context) {
	h.navigate(c, (*service.CalendarController).Prev)
}

// Next godoc
// @Tags Calendar
// @Router /calendar/next [post]
func (h *CalendarHandler) Next(c *gin.Context) {
	h.navigate(c, (*service.CalendarController).Next)
}

func (h *CalendarHandler) navigate(c *gin.Context, move func(*service.CalendarController) models.CalendarView) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	response.OK(c, move(ws.Calendar))
}

// Select godoc
// @Summary Select a day
// @Description Opens the detail panel of a displayed day
// @Tags Calendar
// @Accept json
// @Produce json
// @Param payload body dto.SelectDateRequest true "Day to select"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /calendar/select [post]
func (h *CalendarHandler) Select(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	var req dto.SelectDateRequest
	if !bindJSON(c, &req) {
		return
	}
	day, err := models.ParseDate(req.Date)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date must be a date in YYYY-MM-DD format"))
		return
	}
	view, err := ws.Calendar.Select(day)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

// DeleteSession godoc
// @Summary Delete a class
// @Description Deletes the session upstream and reloads; the calendar position is kept
// @Tags Calendar
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /calendar/sessions/{id} [delete]
func (h *CalendarHandler) DeleteSession(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	view, err := ws.Calendar.DeleteSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

// Export godoc
// @Summary Download the displayed range
// @Tags Calendar
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /calendar/export [get]
func (h *CalendarHandler) Export(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	ws.Calendar.View(c.Request.Context())
	file, err := h.export.Calendar(ws.Calendar, c.DefaultQuery("format", service.ExportCSV))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, file.Name, file.ContentType, file.Body)
}
