package repository

import (
	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/pkg/upstream"
)

// MediaRepository manages media library entries. Files are uploaded elsewhere; the
// console registers them by URL.
type MediaRepository struct {
	*upstream.Resource[models.Media]
}

// NewMediaRepository binds /media.
func NewMediaRepository(client *upstream.Client) *MediaRepository {
	return &MediaRepository{Resource: upstream.NewResource[models.Media](client, "/media")}
}
