package api

import (
	"context"
	"net/http"

	"sirivaram/sirictl/internal/domain"
)

// GetFooter returns the current site footer content.
func (c *Client) GetFooter(ctx context.Context) (*domain.Footer, error) {
	var footer domain.Footer
	if err := c.getObject(ctx, "/api/footer", &footer); err != nil {
		return nil, err
	}
	return &footer, nil
}

// UpdateFooter replaces the site footer content.
func (c *Client) UpdateFooter(ctx context.Context, footer domain.Footer) (string, error) {
	return c.mutate(ctx, http.MethodPut, "/api/admin/footer", footer, nil)
}
