package api

import (
	"context"
	"net/http"

	"sirivaram/sirictl/internal/domain"
)

// ListUsers returns all registered users.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.list(ctx, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ApproveUser transitions a pending user to APPROVED.
func (c *Client) ApproveUser(ctx context.Context, id string) (string, error) {
	return c.mutate(ctx, http.MethodPut, "/api/users/"+id+"/approve", nil, nil)
}

// RejectUser transitions a pending user to REJECTED.
func (c *Client) RejectUser(ctx context.Context, id string) (string, error) {
	return c.mutate(ctx, http.MethodPut, "/api/users/"+id+"/reject", nil, nil)
}

// DeleteUser removes a user permanently.
func (c *Client) DeleteUser(ctx context.Context, id string) (string, error) {
	return c.mutate(ctx, http.MethodDelete, "/api/users/"+id, nil, nil)
}
