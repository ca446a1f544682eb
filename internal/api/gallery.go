package api

import (
	"context"
	"net/http"

	"sirivaram/sirictl/internal/domain"
)

// GalleryInput is the create/update payload for a gallery image.
type GalleryInput struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	Category string `json:"category"`
}

// ListGallery returns all gallery images.
func (c *Client) ListGallery(ctx context.Context) ([]domain.GalleryItem, error) {
	var items []domain.GalleryItem
	if err := c.list(ctx, "/api/gallery", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddGalleryItem adds an image to the gallery and returns the created record.
func (c *Client) AddGalleryItem(ctx context.Context, in GalleryInput) (*domain.GalleryItem, error) {
	var item domain.GalleryItem
	if _, err := c.mutate(ctx, http.MethodPost, "/api/admin/gallery", in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateGalleryItem replaces an existing gallery image.
func (c *Client) UpdateGalleryItem(ctx context.Context, id string, in GalleryInput) (string, error) {
	return c.mutate(ctx, http.MethodPut, "/api/admin/gallery/"+id, in, nil)
}

// DeleteGalleryItem removes a gallery image permanently.
func (c *Client) DeleteGalleryItem(ctx context.Context, id string) (string, error) {
	return c.mutate(ctx, http.MethodDelete, "/api/admin/gallery/"+id, nil, nil)
}
