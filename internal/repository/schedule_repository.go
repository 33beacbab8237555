package repository

import (
	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/pkg/upstream"
)

// ScheduleRepository reads and writes live-class sessions on the upstream API.
type ScheduleRepository struct {
	*upstream.Resource[models.ClassSession]
}

// NewScheduleRepository binds /schedules.
func NewScheduleRepository(client *upstream.Client) *ScheduleRepository {
	return &ScheduleRepository{Resource: upstream.NewResource[models.ClassSession](client, "/schedules")}
}
