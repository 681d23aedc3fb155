package api

import (
	"context"

	"github.com/avolkov/recondesk/internal/client/models"
)

// Register creates an account. The backend validates the profile again;
// this call does not log the user in.
func (c *HTTPClient) Register(ctx context.Context, reg Registration) (*models.Principal, error) {
	var p models.Principal
	if err := c.post(ctx, "/auth/register", nil, "", reg, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for an access token.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.post(ctx, "/auth/login", nil, "", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// CurrentUser fetches the profile bound to the token.
func (c *HTTPClient) CurrentUser(ctx context.Context, token string) (*models.Principal, error) {
	var p models.Principal
	if err := c.get(ctx, "/users/me", nil, token, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

type validateTokenRequest struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// ValidateToken asks the auth service whether the token is still good for
// the user. The local expiry check is cheaper and preferred; this exists for
// server-side revocation checks.
func (c *HTTPClient) ValidateToken(ctx context.Context, username, token string) error {
	return c.post(ctx, "/auth/validate-token", nil, "", validateTokenRequest{Username: username, Token: token}, nil)
}
