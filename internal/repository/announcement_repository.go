package repository

import (
	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/pkg/upstream"
)

// AnnouncementRepository manages announcements.
type AnnouncementRepository struct {
	*upstream.Resource[models.Announcement]
}

// NewAnnouncementRepository binds /announcements.
func NewAnnouncementRepository(client *upstream.Client) *AnnouncementRepository {
	return &AnnouncementRepository{Resource: upstream.NewResource[models.Announcement](client, "/announcements")}
}
