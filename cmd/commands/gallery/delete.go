package gallery

import (
	"context"
	"time"

	"sirivaram/sirictl/cmd/commands/internal/action"
	"sirivaram/sirictl/internal/api"
	"sirivaram/sirictl/internal/auditlog"

	"github.com/spf13/cobra"
)

// DeleteCommand returns the scripted "gallery delete" command.
func DeleteCommand() *cobra.Command {
	return action.Command(action.Spec{
		Use:      "delete <id>",
		Short:    "Remove a gallery image permanently",
		Confirm:  "Remove this image from the gallery? This action cannot be undone.",
		Progress: "Removing image...",
		Done:     "Image removed.",
		Invoke: func(ctx context.Context, client *api.Client, id string) (string, error) {
			start := time.Now()
			msg, err := client.DeleteGalleryItem(ctx, id)
			_ = auditlog.Record("sirictl gallery delete", "gallery", id, "", nil, start, err)
			return msg, err
		},
	})
}
