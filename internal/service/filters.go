package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/noah-isme/edu-admin-console/internal/filter"
	"github.com/noah-isme/edu-admin-console/internal/models"
)

// CourseFilters filter the course catalog.
func CourseFilters() *filter.List[models.Course] {
	return filter.New(
		filter.Text("category", filter.KindFold, func(c models.Course) string { return c.Category }),
		filter.Text("isPublished", filter.KindExact, func(c models.Course) string { return strconv.FormatBool(c.IsPublished) }),
		filter.Text("title", filter.KindContains, func(c models.Course) string { return c.Title }),
	)
}

// UserFilters filter staff accounts.
func UserFilters() *filter.List[models.User] {
	return filter.New(
		filter.Text("role", filter.KindExact, func(u models.User) string { return string(u.Role) }),
	)
}

// MediaFilters implement the media library search box and type selector. The search
// matches a title substring or an exact tag, ignoring case; type "all" is unset.
func MediaFilters() *filter.List[models.Media] {
	return filter.New(
		filter.Custom("search", func(m models.Media, want string) bool {
			for _, tag := range m.Tags {
				if strings.EqualFold(tag, want) {
					return true
				}
			}
			return strings.Contains(strings.ToLower(m.Title), strings.ToLower(want))
		}),
		filter.Custom("type", func(m models.Media, want string) bool {
			return strings.EqualFold(want, "all") || strings.EqualFold(m.Type, want)
		}),
	)
}

// AnnouncementFilters filter announcements.
func AnnouncementFilters() *filter.List[models.Announcement] {
	return filter.New(
		filter.Text("title", filter.KindContains, func(a models.Announcement) string { return a.Title }),
		filter.Timestamp("date", func(a models.Announcement) time.Time { return a.CreatedAt }),
	)
}

// OrderFilters filter course purchases.
func OrderFilters() *filter.List[models.Order] {
	return filter.New(
		filter.Text("paymentStatus", filter.KindFold, func(o models.Order) string { return o.PaymentStatus }),
		filter.Text("courseType", filter.KindFold, func(o models.Order) string { return o.CourseType }),
		filter.Timestamp("date", func(o models.Order) time.Time { return o.CreatedAt }),
	)
}

// PaymentFilters filter gateway payments.
func PaymentFilters() *filter.List[models.Payment] {
	return filter.New(
		filter.Text("status", filter.KindFold, func(p models.Payment) string { return p.Status }),
		filter.Text("method", filter.KindFold, func(p models.Payment) string { return p.Method }),
	)
}

// SessionFilters filter sessions listed outside the calendar grid.
func SessionFilters() *filter.List[models.ClassSession] {
	return filter.New(
		filter.Date("date", func(s models.ClassSession) models.Date { return s.Date }),
		filter.Text("mode", filter.KindExact, func(s models.ClassSession) string { return string(s.DisplayMode()) }),
	)
}
