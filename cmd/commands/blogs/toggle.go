package blogs

import (
	"context"
	"fmt"
	"time"

	"sirivaram/sirictl/cmd/commands/internal/action"
	"sirivaram/sirictl/internal/api"
	"sirivaram/sirictl/internal/auditlog"

	"github.com/spf13/cobra"
)

func ToggleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle a post's public visibility",
		Long: `Flip a post between active and inactive. The toggle is reversible;
running it twice restores the original state.

Example:
  sirictl blogs toggle 17`,
		Args:         cobra.ExactArgs(1),
		RunE:         runToggle,
		SilenceUsage: true,
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runToggle(cmd *cobra.Command, args []string) error {
	id := args[0]

	client, err := api.Resolve()
	if err != nil {
		return err
	}

	blog, err := findBlog(context.Background(), client, id)
	if err != nil {
		return err
	}

	verb := "Publish"
	if blog.IsActive {
		verb = "Hide"
	}

	skipConfirm, _ := cmd.Flags().GetBool("yes")
	if !skipConfirm {
		confirmed, err := action.Confirm(fmt.Sprintf("%s %q?", verb, blog.Title))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	message, err := action.RunWithSpinner(cmd, "Updating visibility...", func(ctx context.Context) (string, error) {
		start := time.Now()
		msg, err := client.SetBlogActive(ctx, id, !blog.IsActive)
		_ = auditlog.Record("sirictl blogs toggle", "blog", id, blog.Title, nil, start, err)
		return msg, err
	})
	if err != nil {
		return fmt.Errorf("failed to toggle blog post: %w", err)
	}

	if message == "" {
		if blog.IsActive {
			message = fmt.Sprintf("%q is now hidden.", blog.Title)
		} else {
			message = fmt.Sprintf("%q is now live.", blog.Title)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}
