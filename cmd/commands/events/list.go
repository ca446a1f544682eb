package events

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
		Short: "List community events",
		Long: `List community events.

On a terminal this opens the interactive browser with search, paging,
and a delete action. Pass --output for scripted use.

Examples:
  sirictl events list
  sirictl events list -o json`,
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
		return browseEvents(client)
	}
	if output == "" {
		output = "table"
	}

	events, err := client.ListEvents(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}
	events = listflags.Apply(cmd, events, domain.Event.SearchText)

	if output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	if len(events) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No events found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tVENUE\tDATE")
	fmt.Fprintln(w, "--\t-----\t-----\t----")
	for _, e := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Title, e.Venue, e.DateLabel())
	}
	w.Flush()
	return nil
}

func browseEvents(client *api.Client) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	return tui.RunBrowse(tui.BrowseConfig[domain.Event]{
		Breadcrumb:   "events",
		EmptyMessage: "No events scheduled yet.",
		PageSize:     cfg.ListPageSize(),
		ID:           func(e domain.Event) string { return e.ID },
		SearchText:   domain.Event.SearchText,
		Columns: []tui.Column[domain.Event]{
			{Title: "TITLE", Width: 28, Flex: true, Value: func(e domain.Event) string { return e.Title }},
			{Title: "VENUE", Width: 22, Value: func(e domain.Event) string { return e.Venue }},
			{Title: "DATE", Width: 12, Value: domain.Event.DateLabel},
		},
		Fetch: client.ListEvents,
		Actions: []tui.RowAction[domain.Event]{
			{
				Kind:        listview.ActionDelete,
				Key:         "d",
				Label:       "delete",
				Destructive: true,
				Confirm: func(e domain.Event) string {
					return fmt.Sprintf("Delete %q permanently? This cannot be undone.", e.Title)
				},
				Invoke: func(ctx context.Context, e domain.Event) (string, error) {
					start := time.Now()
					msg, err := client.DeleteEvent(ctx, e.ID)
					_ = auditlog.Record("sirictl events delete", "event", e.ID, e.Title, nil, start, err)
					return msg, err
				},
			},
		},
	})
}
