package domain

import (
	"strings"
	"time"
)

// Event is a community event members can register and pay for.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Venue       string    `json:"venue"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DateLabel formats the event date for table display.
func (e Event) DateLabel() string {
	if e.Date.IsZero() {
		return "-"
	}
	return e.Date.Format("2006-01-02")
}

// SearchText returns the concatenation of the fields the list view
// matches a search term against.
func (e Event) SearchText() string {
	return strings.Join([]string{e.Title, e.Venue}, " ")
}
