package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/internal/store"
	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
	"github.com/noah-isme/edu-admin-console/pkg/upstream"
)

// 15 March 2025 is a Saturday.
var calendarNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestController(t *testing.T, sessions ...models.ClassSession) (*CalendarController, *fakeSource[models.ClassSession], *Notifier, *recordingAudit) {
	t.Helper()
	src := newFakeSource(sessions...)
	notices := NewNotifier(10)
	audit := &recordingAudit{}
	c := NewCalendarController(store.NewScheduleStore(src, nil), notices, audit, time.UTC, nil)
	c.clock = func() time.Time { return calendarNow }
	c.state = c.initialState()
	return c, src, notices, audit
}

func TestMountStartsOnTodaysWeek(t *testing.T) {
	c, src, _, _ := newTestController(t, classOn("S1", "2025-03-10", "Physics"), classOn("S2", "2025-03-15", "Maths"))

	view := c.Mount(context.Background())

	assert.Equal(t, 1, src.lists)
	assert.Equal(t, "2025-03-15", view.State.AnchorDate.String())
	assert.Equal(t, models.ViewModeWeek, view.State.ViewMode)
	assert.Nil(t, view.State.SelectedDate)
	assert.Nil(t, view.Selected)
	assert.Equal(t, models.LoadStatusReady, view.Status)
	require.Len(t, view.Days, 7)
	assert.Equal(t, "2025-03-09", view.RangeFrom.String())
	assert.Equal(t, "2025-03-15", view.RangeTo.String())
	assert.Equal(t, "Mar 9 - Mar 15, 2025", view.Title)

	monday := view.Days[1]
	assert.Equal(t, "Mon", monday.Weekday)
	assert.Equal(t, 1, monday.SessionCount)
	assert.Equal(t, "Physics", monday.Sessions[0].CourseTitle())
	assert.True(t, view.Days[6].IsToday)
	assert.False(t, monday.IsToday)
}

func TestMountResetsState(t *testing.T) {
	c, _, _, _ := newTestController(t)
	c.Mount(context.Background())
	c.ToggleViewMode()
	c.Next()
	_, err := c.Select(models.MustParseDate("2025-04-10"))
	require.NoError(t, err)

	view := c.Mount(context.Background())

	assert.Equal(t, models.ViewModeWeek, view.State.ViewMode)
	assert.Equal(t, "2025-03-15", view.State.AnchorDate.String())
	assert.Nil(t, view.State.SelectedDate)
}

func TestToggleKeepsAnchorAndSelection(t *testing.T) {
	c, _, _, _ := newTestController(t)
	c.Mount(context.Background())
	_, err := c.Select(models.MustParseDate("2025-03-12"))
	require.NoError(t, err)

	view := c.ToggleViewMode()

	assert.Equal(t, models.ViewModeMonth, view.State.ViewMode)
	assert.Equal(t, "2025-03-15", view.State.AnchorDate.String())
	require.NotNil(t, view.State.SelectedDate)
	assert.Equal(t, "2025-03-12", view.State.SelectedDate.String())
	assert.Equal(t, "March 2025", view.Title)
	assert.Len(t, view.Days, 42)
	assert.False(t, view.Days[0].InMonth)
	assert.True(t, view.Days[10].InMonth)

	view = c.ToggleViewMode()
	assert.Equal(t, models.ViewModeWeek, view.State.ViewMode)
}

func TestNextWeekDoesNotOverlap(t *testing.T) {
	c, _, _, _ := newTestController(t)
	c.Mount(context.Background())
	before := c.View(context.Background())

	after := c.Next()

	assert.Equal(t, "2025-03-22", after.State.AnchorDate.String())
	assert.True(t, before.RangeTo.Before(after.RangeFrom))
	assert.Equal(t, 1, before.RangeTo.DaysUntil(after.RangeFrom))

	back := c.Prev()
	assert.Equal(t, "2025-03-15", back.State.AnchorDate.String())
}

func TestMonthNavigationAndToday(t *testing.T) {
	c, _, _, _ := newTestController(t)
	c.Mount(context.Background())
	c.ToggleViewMode()

	assert.Equal(t, "2025-04-15", c.Next().State.AnchorDate.String())
	assert.Equal(t, "2025-03-15", c.Prev().State.AnchorDate.String())
	assert.Equal(t, "2025-02-15", c.Prev().State.AnchorDate.String())

	view := c.Today()
	assert.Equal(t, "2025-03-15", view.State.AnchorDate.String())
	assert.Equal(t, models.ViewModeMonth, view.State.ViewMode)
}

func TestSelectDay(t *testing.T) {
	c, _, _, _ := newTestController(t, classOn("S1", "2025-03-10", "Physics"), classOn("S2", "2025-03-10", "Chemistry"))
	c.Mount(context.Background())

	view, err := c.Select(models.MustParseDate("2025-03-10"))
	require.NoError(t, err)
	require.NotNil(t, view.Selected)
	assert.Equal(t, "Monday, March 10, 2025", view.Selected.Title)
	assert.True(t, view.Selected.InRange)
	require.Len(t, view.Selected.Sessions, 2)
	assert.Equal(t, "S1", view.Selected.Sessions[0].ID)
	assert.True(t, view.Days[1].IsSelected)

	view, err = c.Select(models.MustParseDate("2025-03-11"))
	require.NoError(t, err)
	assert.Empty(t, view.Selected.Sessions)

	_, err = c.Select(models.MustParseDate("2025-03-20"))
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Equal(t, "2025-03-11", c.State().SelectedDate.String())
}

func TestSelectionSurvivesNavigation(t *testing.T) {
	c, _, _, _ := newTestController(t)
	c.Mount(context.Background())
	_, err := c.Select(models.MustParseDate("2025-03-12"))
	require.NoError(t, err)

	view := c.Next()

	require.NotNil(t, view.Selected)
	assert.False(t, view.Selected.InRange)
	for _, day := range view.Days {
		assert.False(t, day.IsSelected)
	}
}

func TestDeleteSessionReloadsAndKeepsSelection(t *testing.T) {
	c, src, notices, audit := newTestController(t,
		classOn("S1", "2025-03-10", "Physics"),
		classOn("S2", "2025-03-10", "Chemistry"),
		classOn("S3", "2025-03-11", "Maths"),
	)
	c.Mount(context.Background())
	_, err := c.Select(models.MustParseDate("2025-03-10"))
	require.NoError(t, err)

	view, err := c.DeleteSession(context.Background(), "S1")

	require.NoError(t, err)
	assert.Equal(t, 2, src.lists)
	require.NotNil(t, view.State.SelectedDate)
	assert.Equal(t, "2025-03-10", view.State.SelectedDate.String())
	require.Len(t, view.Selected.Sessions, 1)
	assert.Equal(t, "S2", view.Selected.Sessions[0].ID)

	drained := notices.Drain()
	require.Len(t, drained, 1)
	assert.Equal(t, models.NoticeSuccess, drained[0].Level)
	assert.Equal(t, "Class deleted successfully", drained[0].Message)
	require.Len(t, audit.calls, 1)
	assert.Equal(t, auditCall{action: models.AuditActionDelete, resource: "schedules", id: "S1", message: "Class deleted successfully"}, audit.calls[0])
}

func TestDeleteSessionFailureLeavesEverythingUnchanged(t *testing.T) {
	c, src, notices, audit := newTestController(t,
		classOn("S1", "2025-03-10", "Physics"),
		classOn("S2", "2025-03-10", "Chemistry"),
		classOn("S3", "2025-03-11", "Maths"),
	)
	c.Mount(context.Background())
	_, err := c.Select(models.MustParseDate("2025-03-10"))
	require.NoError(t, err)
	before := c.State()

	src.deleteErr = appErrors.Wrap(&upstream.RemoteError{Status: 409, Message: "Class already started"}, appErrors.ErrConflict.Code, 409, "Class already started")
	view, err := c.DeleteSession(context.Background(), "S1")

	require.Error(t, err)
	assert.Equal(t, before, view.State)
	assert.Equal(t, 1, src.lists)
	assert.Len(t, view.Selected.Sessions, 2)
	drained := notices.Drain()
	require.Len(t, drained, 1)
	assert.Equal(t, models.NoticeError, drained[0].Level)
	assert.Equal(t, "Class already started", drained[0].Message)
	assert.True(t, audit.calls[0].failed)

	src.deleteErr = errors.New("connection reset")
	_, err = c.DeleteSession(context.Background(), "S1")
	require.Error(t, err)
	assert.Equal(t, "Failed to delete class", notices.Drain()[0].Message)
}

func TestFetchFailureIsShownInline(t *testing.T) {
	c, src, _, _ := newTestController(t)
	src.listErr = appErrors.ErrUpstreamUnavailable

	view := c.Mount(context.Background())

	assert.Equal(t, models.LoadStatusFailed, view.Status)
	assert.Equal(t, "Failed to fetch classes", view.Error)
	assert.False(t, view.Empty)
	assert.Len(t, view.Days, 7)
	for _, day := range view.Days {
		assert.Zero(t, day.SessionCount)
	}
}

func TestEmptyScheduleIsFlagged(t *testing.T) {
	c, _, _, _ := newTestController(t)

	view := c.View(context.Background())

	assert.True(t, view.Empty)
	assert.Equal(t, models.LoadStatusReady, view.Status)
}

func TestAgendaCoversDisplayedRange(t *testing.T) {
	c, _, _, _ := newTestController(t,
		classOn("S3", "2025-03-11", "Maths"),
		classOn("S1", "2025-03-10", "Physics"),
		classOn("S9", "2025-03-25", "Biology"),
	)
	c.Mount(context.Background())

	agenda := c.Agenda()

	assert.Equal(t, "2025-03-09", agenda.From.String())
	require.Len(t, agenda.Sessions, 2)
	assert.Equal(t, "S1", agenda.Sessions[0].ID)
	assert.Equal(t, "S3", agenda.Sessions[1].ID)
}
