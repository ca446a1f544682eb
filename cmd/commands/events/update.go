package events

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
		Short: "Edit an event",
		Long: `Edit an event. The form opens seeded with the current details.

Example:
  sirictl events update 42`,
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

	event, err := findEvent(context.Background(), client, id)
	if err != nil {
		return err
	}

	in, err := tui.EventForm(&api.EventInput{
		Title:       event.Title,
		Venue:       event.Venue,
		Date:        event.Date,
		Description: event.Description,
	})
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		return err
	}

	message, err := action.RunWithSpinner(cmd, "Updating event...", func(ctx context.Context) (string, error) {
		start := time.Now()
		msg, err := client.UpdateEvent(ctx, id, *in)
		_ = auditlog.Record("sirictl events update", "event", id, in.Title, nil, start, err)
		return msg, err
	})
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	if message == "" {
		message = "Event updated."
	}
	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}
