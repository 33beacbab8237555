// Package calendar computes the day grids of the live-classes calendar and maps
// sessions onto them. All functions are pure.
package calendar

import (
	"time"

	"github.com/noah-isme/edu-admin-console/internal/models"
)

// WeekStart is the first day of every rendered week.
const WeekStart = time.Sunday

const daysPerWeek = 7

// StartOfWeek returns the WeekStart on or before d.
func StartOfWeek(d models.Date) models.Date {
	offset := (int(d.Weekday()) - int(WeekStart) + daysPerWeek) % daysPerWeek
	return d.AddDays(-offset)
}

// EndOfWeek returns the last day of the week containing d.
func EndOfWeek(d models.Date) models.Date {
	return StartOfWeek(d).AddDays(daysPerWeek - 1)
}

// StartOfMonth returns the first day of d's month.
func StartOfMonth(d models.Date) models.Date {
	return models.NewDate(d.Year(), d.Month(), 1)
}

// EndOfMonth returns the last day of d's month.
func EndOfMonth(d models.Date) models.Date {
	return models.NewDate(d.Year(), d.Month()+1, 1).AddDays(-1)
}

// DaysForWeek returns the seven consecutive days of the week containing anchor.
func DaysForWeek(anchor models.Date) []models.Date {
	return span(StartOfWeek(anchor), daysPerWeek)
}

// DaysForMonth returns whole weeks covering the month of anchor, including the
// leading and trailing days of adjacent months.
func DaysForMonth(anchor models.Date) []models.Date {
	first := StartOfWeek(StartOfMonth(anchor))
	last := EndOfWeek(EndOfMonth(anchor))
	return span(first, first.DaysUntil(last)+1)
}

// Days dispatches on the view mode. Unknown modes render as a week.
func Days(anchor models.Date, mode models.ViewMode) []models.Date {
	if mode == models.ViewModeMonth {
		return DaysForMonth(anchor)
	}
	return DaysForWeek(anchor)
}

// Range returns the first and last displayed day.
func Range(anchor models.Date, mode models.ViewMode) (models.Date, models.Date) {
	if mode == models.ViewModeMonth {
		return StartOfWeek(StartOfMonth(anchor)), EndOfWeek(EndOfMonth(anchor))
	}
	return StartOfWeek(anchor), EndOfWeek(anchor)
}

// InRange reports whether day is displayed for anchor and mode.
func InRange(day, anchor models.Date, mode models.ViewMode) bool {
	from, to := Range(anchor, mode)
	return !day.Before(from) && !day.After(to)
}

// SessionsOnDay returns the sessions held on day, in source order.
func SessionsOnDay(sessions []models.ClassSession, day models.Date) []models.ClassSession {
	out := make([]models.ClassSession, 0)
	for _, s := range sessions {
		if s.Date.Equal(day) {
			out = append(out, s)
		}
	}
	return out
}

// Shift moves anchor by steps weeks or months depending on mode.
func Shift(anchor models.Date, mode models.ViewMode, steps int) models.Date {
	if mode == models.ViewModeMonth {
		return AddMonths(anchor, steps)
	}
	return anchor.AddDays(steps * daysPerWeek)
}

// AddMonths adds n calendar months, clamping the day to the target month's length
// (31 January + 1 month = 28 or 29 February).
func AddMonths(d models.Date, n int) models.Date {
	target := models.NewDate(d.Year(), d.Month()+time.Month(n), 1)
	day := d.Day()
	if last := EndOfMonth(target).Day(); day > last {
		day = last
	}
	return models.NewDate(target.Year(), target.Month(), day)
}

// Title is the grid heading, e.g. "March 2025".
func Title(anchor models.Date) string {
	return anchor.Format("January 2006")
}

// DayTitle is the detail panel heading, e.g. "Monday, March 10, 2025".
func DayTitle(d models.Date) string {
	return d.Format("Monday, January 2, 2006")
}

func span(from models.Date, n int) []models.Date {
	days := make([]models.Date, n)
	for i := range days {
		days[i] = from.AddDays(i)
	}
	return days
}
