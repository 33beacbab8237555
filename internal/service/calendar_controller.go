package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/edu-admin-console/internal/calendar"
	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/internal/store"
	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
)

const scheduleResource = "schedules"

// CalendarController holds the live-classes calendar state of one administrator.
// It never edits sessions itself; every mutation goes through the schedule store.
type CalendarController struct {
	mu       sync.Mutex
	store    *store.ScheduleStore
	notices  *Notifier
	audit    auditRecorder
	logger   *zap.Logger
	clock    func() time.Time
	location *time.Location
	messages mutationMessages

	state models.CalendarViewState
}

// NewCalendarController constructs the controller in its initial state for today.
func NewCalendarController(st *store.ScheduleStore, notices *Notifier, audit auditRecorder, loc *time.Location, logger *zap.Logger) *CalendarController {
	if notices == nil {
		notices = NewNotifier(0)
	}
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &CalendarController{
		store:    st,
		notices:  notices,
		audit:    audit,
		logger:   logger.With(zap.String("component", "calendar")),
		clock:    time.Now,
		location: loc,
		messages: mutationMessages{noun: "Class"},
	}
	c.state = c.initialState()
	return c
}

func (c *CalendarController) today() models.Date {
	return models.DateOf(c.clock().In(c.location))
}

func (c *CalendarController) initialState() models.CalendarViewState {
	return models.CalendarViewState{AnchorDate: c.today(), ViewMode: models.ViewModeWeek}
}

// Mount resets the state to today's week with nothing selected and loads all sessions.
func (c *CalendarController) Mount(ctx context.Context) models.CalendarView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.initialState()
	c.store.Reset()
	_ = c.store.Load(ctx)
	return c.view()
}

// View renders the calendar, loading sessions first if they were never loaded.
func (c *CalendarController) View(ctx context.Context) models.CalendarView {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.store.Loaded() {
		_ = c.store.Load(ctx)
	}
	return c.view()
}

// State returns the current view state.
func (c *CalendarController) State() models.CalendarViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ToggleViewMode flips week and month; anchor and selection are kept.
func (c *CalendarController) ToggleViewMode() models.CalendarView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.ViewMode = c.state.ViewMode.Toggle()
	return c.view()
}

// Today moves the anchor to the current date.
func (c *CalendarController) Today() models.CalendarView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.AnchorDate = c.today()
	return c.view()
}

// Prev moves back one week or one month.
func (c *CalendarController) Prev() models.CalendarView {
	return c.shift(-1)
}

// Next moves forward one week or one month.
func (c *CalendarController) Next() models.CalendarView {
	return c.shift(1)
}

func (c *CalendarController) shift(steps int) models.CalendarView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.AnchorDate = calendar.Shift(c.state.AnchorDate, c.state.ViewMode, steps)
	return c.view()
}

// Select sets the day shown in the detail panel. Only displayed days can be selected;
// days without sessions are fine.
func (c *CalendarController) Select(day models.Date) (models.CalendarView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if day.IsZero() {
		return models.CalendarView{}, appErrors.Clone(appErrors.ErrValidation, "date is required")
	}
	if !calendar.InRange(day, c.state.AnchorDate, c.state.ViewMode) {
		return models.CalendarView{}, appErrors.Clone(appErrors.ErrValidation, "date is outside the displayed range")
	}
	c.state.SelectedDate = &day
	return c.view(), nil
}

// DeleteSession deletes a session through the store. On success the store reloads
// wholesale; either way the view state is left as it was.
func (c *CalendarController) DeleteSession(ctx context.Context, id string) (models.CalendarView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.store.Delete(ctx, id)
	recordOutcome(ctx, c.notices, c.audit, c.logger, scheduleResource, c.messages, actionDelete, id, err)
	return c.view(), err
}

// Reset drops loaded sessions and returns to the initial state.
func (c *CalendarController) Reset() {
	c.store.Reset()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.initialState()
}

// Agenda is the list form of the displayed range.
type Agenda struct {
	Title    string
	From     models.Date
	To       models.Date
	Sessions []models.ClassSession
}

// Agenda returns the sessions of the displayed range, by day and then source order.
func (c *CalendarController) Agenda() Agenda {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := c.store.Snapshot()
	days := calendar.Days(c.state.AnchorDate, c.state.ViewMode)
	agenda := Agenda{Title: c.title(), From: days[0], To: days[len(days)-1]}
	for _, day := range days {
		agenda.Sessions = append(agenda.Sessions, calendar.SessionsOnDay(snap.Items, day)...)
	}
	return agenda
}

func (c *CalendarController) title() string {
	if c.state.ViewMode == models.ViewModeWeek {
		from, to := calendar.Range(c.state.AnchorDate, c.state.ViewMode)
		return from.Format("Jan 2") + " - " + to.Format("Jan 2, 2006")
	}
	return calendar.Title(c.state.AnchorDate)
}

// view derives everything from the state and the store snapshot on every call.
func (c *CalendarController) view() models.CalendarView {
	snap := c.store.Snapshot()
	today := c.today()
	days := calendar.Days(c.state.AnchorDate, c.state.ViewMode)
	from, to := days[0], days[len(days)-1]

	out := models.CalendarView{
		State:     c.state,
		Title:     c.title(),
		RangeFrom: from,
		RangeTo:   to,
		Status:    snap.Status,
		Empty:     snap.Status == models.LoadStatusReady && len(snap.Items) == 0,
		Days:      make([]models.CalendarDay, 0, len(days)),
	}
	if snap.Err != nil {
		out.Error = snap.Err.Message
	}

	for _, day := range days {
		sessions := calendar.SessionsOnDay(snap.Items, day)
		out.Days = append(out.Days, models.CalendarDay{
			Date:         day,
			Weekday:      day.Weekday().String()[:3],
			InMonth:      c.state.ViewMode == models.ViewModeWeek || sameMonth(day, c.state.AnchorDate),
			IsToday:      day.Equal(today),
			IsSelected:   c.state.SelectedDate != nil && day.Equal(*c.state.SelectedDate),
			SessionCount: len(sessions),
			Sessions:     sessions,
		})
	}

	if sel := c.state.SelectedDate; sel != nil {
		out.Selected = &models.CalendarSelection{
			Date:     *sel,
			Title:    calendar.DayTitle(*sel),
			InRange:  calendar.InRange(*sel, c.state.AnchorDate, c.state.ViewMode),
			Sessions: calendar.SessionsOnDay(snap.Items, *sel),
		}
	}
	return out
}

func sameMonth(a, b models.Date) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
