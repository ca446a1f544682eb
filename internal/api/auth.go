package api

import (
	"context"
	"fmt"
	"net/http"

	"sirivaram/sirictl/internal/session"
)

// Credentials is the login payload.
type Credentials struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

// RegisterInput is the registration payload for a new admin account.
type RegisterInput struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Village  string `json:"village"`
	Password string `json:"password"`
}

// LoginResult carries the bearer token and the profile blob the client
// persists for the session.
type LoginResult struct {
	Token string           `json:"token"`
	User  session.UserInfo `json:"user"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	var result LoginResult
	if _, err := c.mutate(ctx, http.MethodPost, "/api/auth/login", creds, &result); err != nil {
		return nil, err
	}
	if result.Token == "" {
		return nil, fmt.Errorf("api: login response did not include a token")
	}
	return &result, nil
}

// Register creates a new account. The returned message is the server's
// confirmation text, if any.
func (c *Client) Register(ctx context.Context, in RegisterInput) (string, error) {
	return c.mutate(ctx, http.MethodPost, "/api/auth/register", in, nil)
}
