package domain

import (
	"strings"
	"time"
)

// Blog is a published or draft article. Unlike user/payment review,
// IsActive is a freely reversible toggle, not a one-way transition.
type Blog struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// StatusLabel maps the active flag to the status strings shown in lists.
func (b Blog) StatusLabel() string {
	if b.IsActive {
		return "active"
	}
	return "inactive"
}

// SearchText returns the concatenation of the fields the list view
// matches a search term against.
func (b Blog) SearchText() string {
	return strings.Join([]string{b.Title, b.Author, b.StatusLabel()}, " ")
}
