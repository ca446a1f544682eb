package domain

import (
	"fmt"
	"strings"
	"time"
)

// Payment statuses as reported by the API. Verify/reject are only valid
// transitions out of PaymentPendingVerification; VERIFIED and REJECTED
// are terminal for those two actions. Delete is available from any status.
const (
	PaymentPendingVerification = "PENDING_VERIFICATION"
	PaymentVerified            = "VERIFIED"
	PaymentRejected            = "REJECTED"
)

// Payment is a member payment submitted for an event, pending admin
// verification against the bank reference.
type Payment struct {
	ID        string    `json:"id"`
	PayerName string    `json:"payerName"`
	EventID   string    `json:"eventId"`
	EventName string    `json:"eventName"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Reference string    `json:"reference"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// CanVerify reports whether the verify transition is allowed.
func (p Payment) CanVerify() bool { return p.Status == PaymentPendingVerification }

// CanReject reports whether the reject transition is allowed.
func (p Payment) CanReject() bool { return p.Status == PaymentPendingVerification }

// SearchText returns the concatenation of the fields the list view
// matches a search term against.
func (p Payment) SearchText() string {
	return strings.Join([]string{p.PayerName, p.EventName, p.Method, p.Reference, p.Status}, " ")
}

// AmountLabel formats the amount for table display.
func (p Payment) AmountLabel() string {
	return fmt.Sprintf("₹%.2f", p.Amount)
}
