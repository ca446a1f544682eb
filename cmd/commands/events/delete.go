package events

import (
	"context"
	"time"

	"sirivaram/sirictl/cmd/commands/internal/action"
	"sirivaram/sirictl/internal/api"
	"sirivaram/sirictl/internal/auditlog"

	"github.com/spf13/cobra"
)

// DeleteCommand returns the scripted "events delete" command.
func DeleteCommand() *cobra.Command {
	return action.Command(action.Spec{
		Use:      "delete <id>",
		Short:    "Delete an event permanently",
		Confirm:  "Delete this event? This action cannot be undone.",
		Progress: "Deleting event...",
		Done:     "Event deleted.",
		Invoke: func(ctx context.Context, client *api.Client, id string) (string, error) {
			start := time.Now()
			msg, err := client.DeleteEvent(ctx, id)
			_ = auditlog.Record("sirictl events delete", "event", id, "", nil, start, err)
			return msg, err
		},
	})
}
