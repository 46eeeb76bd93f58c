// Package api is the HTTP client for the café backend. All operations take a
// context, map transport failures to NetworkError and backend-flagged
// failures to BackendError, and tag each request with a correlation id.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"cafe-client/internal/common/logger"
	"cafe-client/internal/domain"
)

// TokenSource supplies the bearer token for authenticated calls; the session
// context implements it. An empty token means the call goes out anonymous.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// do sends one JSON request and decodes the JSON response into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request %s: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request %s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug("api_request", map[string]any{
		"method": method, "path": path, "request_id": req.Header.Get("X-Request-Id"),
	})

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env domain.Envelope
		_ = json.Unmarshal(raw, &env)
		return &domain.BackendError{Op: op, Status: resp.StatusCode, Msg: env.Message}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &domain.BackendError{Op: op, Status: resp.StatusCode, Msg: "malformed response body"}
		}
	}
	return nil
}

// backendFailure builds the error for a 2xx response whose envelope still
// reports success: false.
func backendFailure(op, msg string) error {
	return &domain.BackendError{Op: op, Status: http.StatusOK, Msg: msg}
}
