package blogs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sirivaram/sirictl/cmd/commands/internal/action"
	"sirivaram/sirictl/internal/api"
	"sirivaram/sirictl/internal/auditlog"
	"sirivaram/sirictl/internal/tui"

	"github.com/spf13/cobra"
)

func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a blog post",
		Long: `Create a blog post. Without flags an interactive form collects the
fields.

Examples:
  sirictl blogs create
  sirictl blogs create --title "Harvest festival" --author "Raj" --content "..." --active`,
		RunE:         runCreate,
		SilenceUsage: true,
	}

	cmd.Flags().String("title", "", "Post title")
	cmd.Flags().String("author", "", "Author name")
	cmd.Flags().String("content", "", "Post body")
	cmd.Flags().Bool("active", true, "Publish immediately")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	in := api.BlogInput{}
	in.Title, _ = cmd.Flags().GetString("title")
	in.Author, _ = cmd.Flags().GetString("author")
	in.Content, _ = cmd.Flags().GetString("content")
	in.IsActive, _ = cmd.Flags().GetBool("active")

	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Author) == "" || strings.TrimSpace(in.Content) == "" {
		filled, err := tui.BlogForm(&in)
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			return err
		}
		in = *filled
	}

	client, err := api.Resolve()
	if err != nil {
		return err
	}

	message, err := action.RunWithSpinner(cmd, "Creating blog post...", func(ctx context.Context) (string, error) {
		start := time.Now()
		blog, err := client.CreateBlog(ctx, in)
		id := ""
		if blog != nil {
			id = blog.ID
		}
		_ = auditlog.Record("sirictl blogs create", "blog", id, in.Title, nil, start, err)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Created blog post %s (%s).", blog.ID, blog.StatusLabel()), nil
	})
	if err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}
