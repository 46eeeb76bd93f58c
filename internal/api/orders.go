package api

import (
	"context"
	"fmt"
	"net/http"

	"cafe-client/internal/domain"
)

// CreateOrder submits an order. The caller is responsible for building the
// request from a non-empty cart; this method only carries it to the backend.
func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) error {
	var resp domain.Envelope
	if err := c.do(ctx, http.MethodPost, "/orders/create", req, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return backendFailure("POST /orders/create", resp.Message)
	}
	return nil
}

// MyOrders lists the authenticated user's order history.
func (c *Client) MyOrders(ctx context.Context) (*domain.OrdersResponse, error) {
	var resp domain.OrdersResponse
	if err := c.do(ctx, http.MethodGet, "/orders/my-orders", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, backendFailure("GET /orders/my-orders", resp.Message)
	}
	return &resp, nil
}

// MyOrderDetails fetches one of the authenticated user's orders.
func (c *Client) MyOrderDetails(ctx context.Context, orderID int) (*domain.OrderDetails, error) {
	var resp domain.OrderDetailsResponse
	path := fmt.Sprintf("/orders/my-orders/%d", orderID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, backendFailure("GET "+path, resp.Message)
	}
	return &resp.Data, nil
}

// AllOrders lists every order, paginated (admin only).
func (c *Client) AllOrders(ctx context.Context, page int) (*domain.OrdersResponse, error) {
	var resp domain.OrdersResponse
	path := fmt.Sprintf("/orders/all?page=%d", page)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, backendFailure("GET /orders/all", resp.Message)
	}
	return &resp, nil
}

// OrderDetails fetches any order with customer identity (admin only).
func (c *Client) OrderDetails(ctx context.Context, orderID int) (*domain.OrderDetails, error) {
	var resp domain.OrderDetailsResponse
	path := fmt.Sprintf("/orders/details/%d", orderID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, backendFailure("GET "+path, resp.Message)
	}
	return &resp.Data, nil
}

// UpdateOrderStatus moves an order through its lifecycle (admin only).
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int, status string) error {
	var resp domain.Envelope
	req := domain.StatusUpdateRequest{OrderID: orderID, Status: status}
	if err := c.do(ctx, http.MethodPut, "/orders/status", req, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return backendFailure("PUT /orders/status", resp.Message)
	}
	return nil
}
