package gallery

import (
	"context"
	"fmt"

	"sirivaram/sirictl/internal/api"
	"sirivaram/sirictl/internal/domain"

	"github.com/spf13/cobra"
)

// NewCommand returns the "gallery" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Manage the photo gallery",
		Long:  `Manage the public photo gallery: add, edit, and remove images.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(AddCommand())
	cmd.AddCommand(UpdateCommand())
	cmd.AddCommand(DeleteCommand())

	return cmd
}

// findItem fetches the gallery image with the given ID. The API has no
// single-image endpoint, so this lists and filters.
func findItem(ctx context.Context, client *api.Client, id string) (*domain.GalleryItem, error) {
	items, err := client.ListGallery(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery: %w", err)
	}
	for _, g := range items {
		if g.ID == id {
			return &g, nil
		}
	}
	return nil, fmt.Errorf("no gallery image with ID %q", id)
}
