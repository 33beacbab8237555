package repository

import (
	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/pkg/upstream"
)

// CourseRepository manages the course catalog.
type CourseRepository struct {
	*upstream.Resource[models.Course]
}

// NewCourseRepository binds /courses.
func NewCourseRepository(client *upstream.Client) *CourseRepository {
	return &CourseRepository{Resource: upstream.NewResource[models.Course](client, "/courses")}
}
