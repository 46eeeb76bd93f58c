package api

import (
	"context"
	"net/http"

	"cafe-client/internal/domain"
)

// Signin exchanges credentials for an identity and bearer token.
func (c *Client) Signin(ctx context.Context, email, password string) (*domain.LoginData, error) {
	var resp domain.LoginResponse
	req := domain.SigninRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/signin", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Data == nil {
		return nil, backendFailure("POST /auth/signin", resp.Message)
	}
	return resp.Data, nil
}

// Signup registers a new account; on success the backend signs the user in.
func (c *Client) Signup(ctx context.Context, req domain.SignupRequest) (*domain.LoginData, error) {
	var resp domain.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Data == nil {
		return nil, backendFailure("POST /auth/signup", resp.Message)
	}
	return resp.Data, nil
}
