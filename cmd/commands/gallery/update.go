package gallery

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
		Short: "Edit a gallery image",
		Long: `Edit a gallery image. The form opens seeded with the current details.

Example:
  sirictl gallery update 8`,
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

	item, err := findItem(context.Background(), client, id)
	if err != nil {
		return err
	}

	in, err := tui.GalleryForm(&api.GalleryInput{
		Title:    item.Title,
		ImageURL: item.ImageURL,
		Category: item.Category,
	})
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		return err
	}

	message, err := action.RunWithSpinner(cmd, "Updating image...", func(ctx context.Context) (string, error) {
		start := time.Now()
		msg, err := client.UpdateGalleryItem(ctx, id, *in)
		_ = auditlog.Record("sirictl gallery update", "gallery", id, in.Title, nil, start, err)
		return msg, err
	})
	if err != nil {
		return fmt.Errorf("failed to update image: %w", err)
	}

	if message == "" {
		message = "Image updated."
	}
	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}
