package events

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
		Short: "Create an event",
		Long: `Create a community event. Without flags an interactive form collects
the fields.

Examples:
  sirictl events create
  sirictl events create --title "Ugadi" --venue "Community hall" --date "2026-03-20 18:00"`,
		RunE:         runCreate,
		SilenceUsage: true,
	}

	cmd.Flags().String("title", "", "Event title")
	cmd.Flags().String("venue", "", "Venue")
	cmd.Flags().String("date", "", "Date and time (YYYY-MM-DD HH:MM)")
	cmd.Flags().String("description", "", "Description")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	in := api.EventInput{}
	in.Title, _ = cmd.Flags().GetString("title")
	in.Venue, _ = cmd.Flags().GetString("venue")
	in.Description, _ = cmd.Flags().GetString("description")
	dateText, _ := cmd.Flags().GetString("date")

	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Venue) == "" || strings.TrimSpace(dateText) == "" {
		filled, err := tui.EventForm(&in)
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			return err
		}
		in = *filled
	} else {
		date, err := time.ParseInLocation("2006-01-02 15:04", strings.TrimSpace(dateText), time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q (want YYYY-MM-DD HH:MM)", dateText)
		}
		in.Date = date
	}

	client, err := api.Resolve()
	if err != nil {
		return err
	}

	message, err := action.RunWithSpinner(cmd, "Creating event...", func(ctx context.Context) (string, error) {
		start := time.Now()
		event, err := client.CreateEvent(ctx, in)
		id := ""
		if event != nil {
			id = event.ID
		}
		_ = auditlog.Record("sirictl events create", "event", id, in.Title, nil, start, err)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Created event %s on %s.", event.ID, event.DateLabel()), nil
	})
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}
