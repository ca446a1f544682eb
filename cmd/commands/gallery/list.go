package gallery

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
	"sirivaram/sirictl/internal/util"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List gallery images",
		Long: `List gallery images.

On a terminal this opens the interactive browser with search, paging,
and a delete action. Pass --output for scripted use.

Examples:
  sirictl gallery list
  sirictl gallery list -o json`,
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
		return browseGallery(client)
	}
	if output == "" {
		output = "table"
	}

	items, err := client.ListGallery(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list gallery: %w", err)
	}
	items = listflags.Apply(cmd, items, domain.GalleryItem.SearchText)

	if output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No gallery images found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tURL")
	fmt.Fprintln(w, "--\t-----\t--------\t---")
	for _, g := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", g.ID, g.Title, g.Category, util.Truncate(g.ImageURL, 60))
	}
	w.Flush()
	return nil
}

func browseGallery(client *api.Client) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	return tui.RunBrowse(tui.BrowseConfig[domain.GalleryItem]{
		Breadcrumb:   "gallery",
		EmptyMessage: "No images in the gallery yet.",
		PageSize:     cfg.ListPageSize(),
		ID:           func(g domain.GalleryItem) string { return g.ID },
		SearchText:   domain.GalleryItem.SearchText,
		Columns: []tui.Column[domain.GalleryItem]{
			{Title: "TITLE", Width: 26, Flex: true, Value: func(g domain.GalleryItem) string { return g.Title }},
			{Title: "CATEGORY", Width: 16, Value: func(g domain.GalleryItem) string { return g.Category }},
			{Title: "URL", Width: 34, Value: func(g domain.GalleryItem) string { return g.ImageURL }},
		},
		Fetch: client.ListGallery,
		Actions: []tui.RowAction[domain.GalleryItem]{
			{
				Kind:        listview.ActionDelete,
				Key:         "d",
				Label:       "delete",
				Destructive: true,
				Confirm: func(g domain.GalleryItem) string {
					return fmt.Sprintf("Remove %q from the gallery? This cannot be undone.", g.Title)
				},
				Invoke: func(ctx context.Context, g domain.GalleryItem) (string, error) {
					start := time.Now()
					msg, err := client.DeleteGalleryItem(ctx, g.ID)
					_ = auditlog.Record("sirictl gallery delete", "gallery", g.ID, g.Title, nil, start, err)
					return msg, err
				},
			},
		},
	})
}
