package clients

import (
	"context"
	"net/http"

	"github.com/tokokita/tokokita-admin-service/internal/models"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token and user profile. This is
// the only endpoint that runs without a session.
func (c *Backoffice) Login(ctx context.Context, username, password string) (*models.LoginResult, error) {
	var result models.LoginResult
	err := c.call(ctx, nil, "auth.login", http.MethodPost, "/login", loginRequest{
		Username: username,
		Password: password,
	}, &result, false)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout invalidates the session's token upstream.
func (c *Backoffice) Logout(ctx context.Context, sess *models.Session) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	return c.call(ctx, sess, "auth.logout", http.MethodPost, "/logout", struct{}{}, nil, false)
}
