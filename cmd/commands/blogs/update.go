package blogs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sirivaram/sirictl/cmd/commands/internal/action"
	"sirivaram/sirictl/internal/api"
	"sirivaram/sirictl/internal/auditlog"
	"sirivaram/sirictl/internal/tui"

	"github.com/spf13/cobra"
)

func UpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a blog post",
		Long: `Edit a blog post. The form opens seeded with the current content.

Example:
  sirictl blogs update 17`,
		Args:         cobra.ExactArgs(1),
		RunE:         runUpdate,
		SilenceUsage: true,
	}

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id := args[0]

	client, err := api.Resolve()
	if err != nil {
		return err
	}

	blog, err := findBlog(context.Background(), client, id)
	if err != nil {
		return err
	}

	in, err := tui.BlogForm(&api.BlogInput{
		Title:    blog.Title,
		Author:   blog.Author,
		Content:  blog.Content,
		IsActive: blog.IsActive,
	})
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		return err
	}

	message, err := action.RunWithSpinner(cmd, "Updating blog post...", func(ctx context.Context) (string, error) {
		start := time.Now()
		msg, err := client.UpdateBlog(ctx, id, *in)
		_ = auditlog.Record("sirictl blogs update", "blog", id, in.Title, nil, start, err)
		return msg, err
	})
	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}

	if message == "" {
		message = "Blog post updated."
	}
	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}
