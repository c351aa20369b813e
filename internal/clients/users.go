package clients

import (
	"context"
	"net/http"

	"github.com/tokokita/tokokita-admin-service/internal/models"
)

// UserRequest is the create/update payload for an admin user. Password is
// only sent when set.
type UserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// ListUsers fetches the admin user collection.
func (c *Backoffice) ListUsers(ctx context.Context, sess *models.Session) ([]models.UserProfile, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	var users []models.UserProfile
	if err := c.call(ctx, sess, "user.list", http.MethodGet, "/user", nil, &users, false); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates an admin user.
func (c *Backoffice) CreateUser(ctx context.Context, sess *models.Session, req UserRequest) (*models.UserProfile, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	var user models.UserProfile
	if err := c.call(ctx, sess, "user.create", http.MethodPost, "/user", req, &user, false); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates an admin user. Unlike the customer endpoints, a
// rejected update comes back as a plain RequestError with the response
// text; the API does not return field-level errors here.
func (c *Backoffice) UpdateUser(ctx context.Context, sess *models.Session, id string, req UserRequest) (*models.UserProfile, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	var user models.UserProfile
	if err := c.call(ctx, sess, "user.update", http.MethodPatch, "/user/"+id, req, &user, false); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser deletes an admin user.
func (c *Backoffice) DeleteUser(ctx context.Context, sess *models.Session, id string) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	return c.call(ctx, sess, "user.delete", http.MethodDelete, "/user/"+id, nil, nil, false)
}
