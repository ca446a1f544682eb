package blogs

import (
	"context"
	"time"

	"sirivaram/sirictl/cmd/commands/internal/action"
	"sirivaram/sirictl/internal/api"
	"sirivaram/sirictl/internal/auditlog"

	"github.com/spf13/cobra"
)

// DeleteCommand returns the scripted "blogs delete" command.
func DeleteCommand() *cobra.Command {
	return action.Command(action.Spec{
		Use:      "delete <id>",
		Short:    "Delete a blog post permanently",
		Confirm:  "Delete this blog post? This action cannot be undone.",
		Progress: "Deleting blog post...",
		Done:     "Blog post deleted.",
		Invoke: func(ctx context.Context, client *api.Client, id string) (string, error) {
			start := time.Now()
			msg, err := client.DeleteBlog(ctx, id)
			_ = auditlog.Record("sirictl blogs delete", "blog", id, "", nil, start, err)
			return msg, err
		},
	})
}
