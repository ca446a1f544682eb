package api

import (
	"context"
	"net/http"
	"time"

	"sirivaram/sirictl/internal/domain"
)

// EventInput is the create/update payload for an event.
type EventInput struct {
	Title       string    `json:"title"`
	Venue       string    `json:"venue"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// ListEvents returns all events.
func (c *Client) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	if err := c.list(ctx, "/api/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent creates a new event and returns the created record.
func (c *Client) CreateEvent(ctx context.Context, in EventInput) (*domain.Event, error) {
	var event domain.Event
	if _, err := c.mutate(ctx, http.MethodPost, "/api/admin/events", in, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// UpdateEvent replaces an existing event.
func (c *Client) UpdateEvent(ctx context.Context, id string, in EventInput) (string, error) {
	return c.mutate(ctx, http.MethodPut, "/api/admin/events/"+id, in, nil)
}

// DeleteEvent removes an event permanently.
func (c *Client) DeleteEvent(ctx context.Context, id string) (string, error) {
	return c.mutate(ctx, http.MethodDelete, "/api/admin/events/"+id, nil, nil)
}
