package api

import (
	"context"
	"net/http"

	"cafe-client/internal/domain"
)

// FetchMenu returns the full menu grouped by category. Read-only and
// anonymous; also the authoritative source of unit prices at add-time.
func (c *Client) FetchMenu(ctx context.Context) (map[string][]domain.MenuItem, error) {
	var resp domain.MenuResponse
	if err := c.do(ctx, http.MethodGet, "/menu/get", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, backendFailure("GET /menu/get", resp.Message)
	}
	return resp.Data, nil
}

// AddMenuItem creates a menu entry (admin only).
func (c *Client) AddMenuItem(ctx context.Context, form domain.MenuItemForm) error {
	var resp domain.Envelope
	if err := c.do(ctx, http.MethodPost, "/menu/add", form, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return backendFailure("POST /menu/add", resp.Message)
	}
	return nil
}

// DeleteMenuItem removes a menu entry (admin only).
func (c *Client) DeleteMenuItem(ctx context.Context, id int) error {
	var resp domain.Envelope
	req := domain.DeleteMenuItemRequest{ID: id}
	if err := c.do(ctx, http.MethodDelete, "/menu/delete", req, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return backendFailure("DELETE /menu/delete", resp.Message)
	}
	return nil
}
