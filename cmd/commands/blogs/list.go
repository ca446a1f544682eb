package blogs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"sirivaram/sirictl/cmd/commands/internal/listflags"
	"sirivaram/sirictl/internal/api"
	"sirivaram/sirictl/internal/auditlog"
	"sirivaram/sirictl/internal/config"
	"sirivaram/sirictl/internal/domain"
	"sirivaram/sirictl/internal/listview"
	"sirivaram/sirictl/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List blog posts",
		Long: `List blog posts, active and inactive.

On a terminal this opens the interactive browser with search, paging,
and toggle/delete actions. Pass --output for scripted use.

Examples:
  sirictl blogs list
  sirictl blogs list -o json`,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "", "Output format: table or json (default: interactive on a terminal)")
	listflags.Register(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	client, err := api.Resolve()
	if err != nil {
		return err
	}

	if output == "" && !listflags.Scripted(cmd) && term.IsTerminal(int(os.Stdout.Fd())) {
		return browseBlogs(client)
	}
	if output == "" {
		output = "table"
	}

	blogs, err := client.ListBlogs(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list blogs: %w", err)
	}
	blogs = listflags.Apply(cmd, blogs, domain.Blog.SearchText)

	if output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(blogs)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	if len(blogs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No blog posts found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tSTATUS\tCREATED")
	fmt.Fprintln(w, "--\t-----\t------\t------\t-------")
	for _, b := range blogs {
		created := "-"
		if !b.CreatedAt.IsZero() {
			created = b.CreatedAt.Local().Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", b.ID, b.Title, b.Author, b.StatusLabel(), created)
	}
	w.Flush()
	return nil
}

func browseBlogs(client *api.Client) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	return tui.RunBrowse(tui.BrowseConfig[domain.Blog]{
		Breadcrumb:   "blogs",
		EmptyMessage: "No blog posts yet.",
		PageSize:     cfg.ListPageSize(),
		ID:           func(b domain.Blog) string { return b.ID },
		SearchText:   domain.Blog.SearchText,
		Columns: []tui.Column[domain.Blog]{
			{Title: "TITLE", Width: 30, Flex: true, Value: func(b domain.Blog) string { return b.Title }},
			{Title: "AUTHOR", Width: 18, Value: func(b domain.Blog) string { return b.Author }},
			{Title: "STATUS", Width: 10, Status: true, Value: domain.Blog.StatusLabel},
		},
		Fetch: client.ListBlogs,
		Actions: []tui.RowAction[domain.Blog]{
			{
				Kind:  listview.ActionToggle,
				Key:   "t",
				Label: "toggle",
				Confirm: func(b domain.Blog) string {
					if b.IsActive {
						return fmt.Sprintf("Hide %q from the public site?", b.Title)
					}
					return fmt.Sprintf("Publish %q to the public site?", b.Title)
				},
				Invoke: func(ctx context.Context, b domain.Blog) (string, error) {
					start := time.Now()
					msg, err := client.SetBlogActive(ctx, b.ID, !b.IsActive)
					_ = auditlog.Record("sirictl blogs toggle", "blog", b.ID, b.Title, nil, start, err)
					return msg, err
				},
			},
			{
				Kind:        listview.ActionDelete,
				Key:         "d",
				Label:       "delete",
				Destructive: true,
				Confirm: func(b domain.Blog) string {
					return fmt.Sprintf("Delete %q permanently? This cannot be undone.", b.Title)
				},
				Invoke: func(ctx context.Context, b domain.Blog) (string, error) {
					start := time.Now()
					msg, err := client.DeleteBlog(ctx, b.ID)
					_ = auditlog.Record("sirictl blogs delete", "blog", b.ID, b.Title, nil, start, err)
					return msg, err
				},
			},
		},
	})
}
