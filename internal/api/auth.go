package api

import (
	"context"
	"net/http"
)

// Login exchanges credentials for the user record and its token.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	var u User
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &u, false); err != nil {
		return nil, err
	}
	return &u, nil
}
