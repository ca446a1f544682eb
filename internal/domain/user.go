package domain

import (
	"strings"
	"time"
)

// User statuses as reported by the API. Approve/reject are only valid
// transitions out of UserPending; APPROVED and REJECTED are terminal
// for those two actions. Delete is available from any status.
const (
	UserPending  = "PENDING"
	UserApproved = "APPROVED"
	UserRejected = "REJECTED"
)

// User is a registered member awaiting or past admin review.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	Village   string    `json:"village"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// CanApprove reports whether the approve transition is allowed.
func (u User) CanApprove() bool { return u.Status == UserPending }

// CanReject reports whether the reject transition is allowed.
func (u User) CanReject() bool { return u.Status == UserPending }

// SearchText returns the concatenation of the fields the list view
// matches a search term against.
func (u User) SearchText() string {
	return strings.Join([]string{u.Name, u.Mobile, u.Village, u.Role, u.Status}, " ")
}
