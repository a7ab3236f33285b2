package api

import (
	"context"
	"net/http"
)

// User is the profile record the auth service returns.
type User struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type authEnvelope struct {
	User    *User  `json:"user"`
	Message string `json:"message"`
}

// Signup creates an account and starts a session.
func (c *Client) Signup(ctx context.Context, fullName, email, password string) (*User, string, error) {
	body := struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{fullName, email, password}
	var env authEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/create-user", nil, body, &env); err != nil {
		return nil, "", err
	}
	c.saveCookies()
	return env.User, env.Message, nil
}

// Login exchanges credentials for a session cookie.
func (c *Client) Login(ctx context.Context, email, password string) (*User, string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}
	var env authEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/login", nil, body, &env); err != nil {
		return nil, "", err
	}
	c.saveCookies()
	return env.User, env.Message, nil
}

// Logout invalidates the server-side session and drops the local cookie.
func (c *Client) Logout(ctx context.Context) (string, error) {
	var env authEnvelope
	err := c.doJSON(ctx, http.MethodPost, "/logout", nil, nil, &env)
	c.ClearSession()
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// Profile fetches the user for the current session cookie.
func (c *Client) Profile(ctx context.Context) (*User, string, error) {
	var env authEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/profile", nil, nil, &env); err != nil {
		return nil, "", err
	}
	c.saveCookies()
	return env.User, env.Message, nil
}
