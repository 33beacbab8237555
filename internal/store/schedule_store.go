package store

import (
	"go.uber.org/zap"

	"github.com/noah-isme/edu-admin-console/internal/models"
)

// ScheduleStore owns the live-class sessions shown on the calendar.
type ScheduleStore = ListStore[models.ClassSession]

// NewScheduleStore binds the store to the schedules collection.
func NewScheduleStore(src Source[models.ClassSession], logger *zap.Logger) *ScheduleStore {
	return NewListStore[models.ClassSession]("schedules", src, "Failed to fetch classes", logger)
}
