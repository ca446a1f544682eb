package domain

import (
	"strings"
	"time"
)

// GalleryItem is a single image in the public gallery.
type GalleryItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// SearchText returns the concatenation of the fields the list view
// matches a search term against.
func (g GalleryItem) SearchText() string {
	return strings.Join([]string{g.Title, g.Category}, " ")
}
