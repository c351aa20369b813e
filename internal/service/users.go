package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/tokokita/tokokita-admin-service/internal/clients"
	"github.com/tokokita/tokokita-admin-service/internal/models"
)

// UserService backs the admin user list view. Creates and updates are
// RefreshFull; deletes are RefreshLocal. Unlike customers there is no
// field-level conflict mapping; the API rejects bad user writes with a
// plain error body.
type UserService struct {
	api    clients.API
	logger *logrus.Entry
}

func NewUserService(api clients.API, logger *logrus.Entry) *UserService {
	return &UserService{api: api, logger: logger}
}

// List fetches the admin user collection.
func (s *UserService) List(ctx context.Context, sess *models.Session) ([]models.UserProfile, error) {
	return s.api.ListUsers(ctx, sess)
}

// Create creates an admin user and returns the refreshed collection.
func (s *UserService) Create(ctx context.Context, sess *models.Session, req clients.UserRequest) ([]models.UserProfile, error) {
	if _, err := s.api.CreateUser(ctx, sess, req); err != nil {
		return nil, err
	}
	return s.api.ListUsers(ctx, sess)
}

// Update updates an admin user and returns the refreshed collection.
func (s *UserService) Update(ctx context.Context, sess *models.Session, id string, req clients.UserRequest) ([]models.UserProfile, error) {
	if _, err := s.api.UpdateUser(ctx, sess, id, req); err != nil {
		return nil, err
	}
	return s.api.ListUsers(ctx, sess)
}

// Delete deletes an admin user. RefreshLocal: the caller drops the row on
// success and keeps it on failure.
func (s *UserService) Delete(ctx context.Context, sess *models.Session, id string) error {
	return s.api.DeleteUser(ctx, sess, id)
}
