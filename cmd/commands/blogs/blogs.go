package blogs

import (
	"context"
	"fmt"

	"sirivaram/sirictl/internal/api"
	"sirivaram/sirictl/internal/domain"

	"github.com/spf13/cobra"
)

// NewCommand returns the "blogs" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blogs",
		Short: "Manage blog posts",
		Long: `Manage blog posts.

Posts carry an active flag that controls public visibility; toggling it
is freely reversible, unlike the one-way user and payment reviews.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(UpdateCommand())
	cmd.AddCommand(ToggleCommand())
	cmd.AddCommand(DeleteCommand())

	return cmd
}

// findBlog fetches the post with the given ID. The API has no
// single-post endpoint, so this lists and filters.
func findBlog(ctx context.Context, client *api.Client, id string) (*domain.Blog, error) {
	blogs, err := client.ListBlogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	for _, b := range blogs {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, fmt.Errorf("no blog post with ID %q", id)
}
