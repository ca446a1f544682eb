package api

import (
	"context"
	"net/http"

	"sirivaram/sirictl/internal/domain"
)

// ListPayments returns all payments, optionally filtered server-side by
// status (empty means all).
func (c *Client) ListPayments(ctx context.Context, status string) ([]domain.Payment, error) {
	var query map[string]string
	if status != "" {
		query = map[string]string{"status": status}
	}

	var payments []domain.Payment
	if err := c.list(ctx, "/api/admin/payments", query, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// ListPaymentsByEvent returns the payments recorded against one event.
func (c *Client) ListPaymentsByEvent(ctx context.Context, eventID string) ([]domain.Payment, error) {
	var payments []domain.Payment
	if err := c.list(ctx, "/api/admin/payments/by-event/"+eventID, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// VerifyPayment transitions a pending payment to VERIFIED.
func (c *Client) VerifyPayment(ctx context.Context, id string) (string, error) {
	return c.mutate(ctx, http.MethodPut, "/api/admin/payments/"+id+"/verify", nil, nil)
}

// RejectPayment transitions a pending payment to REJECTED.
func (c *Client) RejectPayment(ctx context.Context, id string) (string, error) {
	return c.mutate(ctx, http.MethodPut, "/api/admin/payments/"+id+"/reject", nil, nil)
}

// DeletePayment removes a payment record permanently.
func (c *Client) DeletePayment(ctx context.Context, id string) (string, error) {
	return c.mutate(ctx, http.MethodDelete, "/api/admin/payments/"+id, nil, nil)
}
