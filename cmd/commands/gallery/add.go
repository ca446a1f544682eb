package gallery

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

func AddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an image to the gallery",
		Long: `Add an image to the gallery. Without flags an interactive form
collects the fields.

Examples:
  sirictl gallery add
  sirictl gallery add --title "Temple festival" --url https://... --category festivals`,
		RunE:         runAdd,
		SilenceUsage: true,
	}

	cmd.Flags().String("title", "", "Image title")
	cmd.Flags().String("url", "", "Image URL")
	cmd.Flags().String("category", "", "Category")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	in := api.GalleryInput{}
	in.Title, _ = cmd.Flags().GetString("title")
	in.ImageURL, _ = cmd.Flags().GetString("url")
	in.Category, _ = cmd.Flags().GetString("category")

	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.ImageURL) == "" || strings.TrimSpace(in.Category) == "" {
		filled, err := tui.GalleryForm(&in)
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

	message, err := action.RunWithSpinner(cmd, "Adding image...", func(ctx context.Context) (string, error) {
		start := time.Now()
		item, err := client.AddGalleryItem(ctx, in)
		id := ""
		if item != nil {
			id = item.ID
		}
		_ = auditlog.Record("sirictl gallery add", "gallery", id, in.Title, nil, start, err)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Added image %s to %s.", item.ID, item.Category), nil
	})
	if err != nil {
		return fmt.Errorf("failed to add image: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}
