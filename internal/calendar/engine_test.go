package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edu-admin-console/internal/models"
)

func session(id, date, course string) models.ClassSession {
	return models.ClassSession{ID: id, Date: models.MustParseDate(date), Course: &models.CourseRef{Title: course}}
}

func TestDaysForWeekCoversAnchor(t *testing.T) {
	start := models.MustParseDate("2024-12-01")
	for i := 0; i < 120; i++ {
		anchor := start.AddDays(i)
		days := DaysForWeek(anchor)

		require.Len(t, days, 7, anchor.String())
		assert.Equal(t, WeekStart, days[0].Weekday(), anchor.String())
		for j := 1; j < len(days); j++ {
			assert.Equal(t, 1, days[j-1].DaysUntil(days[j]))
		}
		assert.True(t, InRange(anchor, anchor, models.ViewModeWeek))
		assert.False(t, anchor.Before(days[0]) || anchor.After(days[6]))
	}
}

func TestDaysForMonthIsWholeWeeks(t *testing.T) {
	start := models.MustParseDate("2024-01-15")
	for i := 0; i < 24; i++ {
		anchor := AddMonths(start, i)
		days := DaysForMonth(anchor)

		require.Zero(t, len(days)%7, anchor.String())
		assert.Equal(t, WeekStart, days[0].Weekday())
		assert.False(t, days[0].After(StartOfMonth(anchor)))
		assert.False(t, days[len(days)-1].Before(EndOfMonth(anchor)))
		for j := 1; j < len(days); j++ {
			assert.Equal(t, 1, days[j-1].DaysUntil(days[j]))
		}
	}
}

func TestDaysForMonthIncludesAdjacentDays(t *testing.T) {
	days := DaysForMonth(models.MustParseDate("2025-03-15"))

	require.Len(t, days, 42)
	assert.Equal(t, "2025-02-23", days[0].String())
	assert.Equal(t, "2025-04-05", days[len(days)-1].String())
}

func TestDaysForMonthWithoutPadding(t *testing.T) {
	// February 2015 starts on a Sunday and ends on a Saturday.
	days := DaysForMonth(models.MustParseDate("2015-02-10"))

	require.Len(t, days, 28)
	assert.Equal(t, "2015-02-01", days[0].String())
	assert.Equal(t, "2015-02-28", days[27].String())
}

func TestSessionsOnDayKeepsSourceOrder(t *testing.T) {
	sessions := []models.ClassSession{
		session("1", "2025-03-10", "Physics"),
		session("2", "2025-03-10", "Chemistry"),
		session("3", "2025-03-11", "Maths"),
	}

	got := SessionsOnDay(sessions, models.MustParseDate("2025-03-10"))

	require.Len(t, got, 2)
	assert.Equal(t, "Physics", got[0].CourseTitle())
	assert.Equal(t, "Chemistry", got[1].CourseTitle())
	assert.Empty(t, SessionsOnDay(sessions, models.MustParseDate("2025-03-12")))
}

func TestSessionsOnDayIgnoresTimeOfDay(t *testing.T) {
	var s models.ClassSession
	require.NoError(t, s.Date.UnmarshalJSON([]byte(`"2025-03-10T18:30:00.000Z"`)))

	got := SessionsOnDay([]models.ClassSession{s}, models.MustParseDate("2025-03-10"))

	assert.Len(t, got, 1)
}

func TestShiftWeekMovesSevenDays(t *testing.T) {
	anchor := models.MustParseDate("2025-03-15")
	require.Equal(t, time.Saturday, anchor.Weekday())

	next := Shift(anchor, models.ViewModeWeek, 1)
	assert.Equal(t, "2025-03-22", next.String())

	before := DaysForWeek(anchor)
	after := DaysForWeek(next)
	assert.True(t, before[6].Before(after[0]))
	assert.Equal(t, "2025-03-09", before[0].String())
	assert.Equal(t, "2025-03-16", after[0].String())

	assert.Equal(t, "2025-03-08", Shift(anchor, models.ViewModeWeek, -1).String())
}

func TestShiftMonthClampsDay(t *testing.T) {
	cases := []struct {
		anchor string
		steps  int
		want   string
	}{
		{"2025-01-31", 1, "2025-02-28"},
		{"2024-01-31", 1, "2024-02-29"},
		{"2025-03-31", 1, "2025-04-30"},
		{"2025-03-31", -1, "2025-02-28"},
		{"2025-12-15", 1, "2026-01-15"},
		{"2025-01-15", -1, "2024-12-15"},
	}
	for _, tc := range cases {
		got := Shift(models.MustParseDate(tc.anchor), models.ViewModeMonth, tc.steps)
		assert.Equal(t, tc.want, got.String(), "%s %+d", tc.anchor, tc.steps)
	}
}

func TestTitles(t *testing.T) {
	d := models.MustParseDate("2025-03-10")
	assert.Equal(t, "March 2025", Title(d))
	assert.Equal(t, "Monday, March 10, 2025", DayTitle(d))
}
