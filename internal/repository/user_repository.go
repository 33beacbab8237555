package repository

import (
	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/pkg/upstream"
)

// UserRepository manages staff accounts.
type UserRepository struct {
	*upstream.Resource[models.User]
}

// NewUserRepository binds /users.
func NewUserRepository(client *upstream.Client) *UserRepository {
	return &UserRepository{Resource: upstream.NewResource[models.User](client, "/users")}
}
