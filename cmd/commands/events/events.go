package events

import (
	"context"
	"fmt"

	"sirivaram/sirictl/internal/api"
	"sirivaram/sirictl/internal/domain"

	"github.com/spf13/cobra"
)

// NewCommand returns the "events" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Manage community events",
		Long: `Manage community events.

Events are what members register and pay for; payments reference them
by ID ("sirictl payments list --event <id>").`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(UpdateCommand())
	cmd.AddCommand(DeleteCommand())

	return cmd
}

// findEvent fetches the event with the given ID. The API has no
// single-event endpoint, so this lists and filters.
func findEvent(ctx context.Context, client *api.Client, id string) (*domain.Event, error) {
	events, err := client.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	for _, e := range events {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("no event with ID %q", id)
}
