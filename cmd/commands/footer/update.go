package footer

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
		Use:   "update",
		Short: "Edit the footer content",
		Long: `Edit the footer content. The form opens seeded with the current
values, so saving without changes is a harmless no-op.

Example:
  sirictl footer update`,
		RunE:         runUpdate,
		SilenceUsage: true,
	}

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	client, err := api.Resolve()
	if err != nil {
		return err
	}

	current, err := client.GetFooter(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch footer: %w", err)
	}

	updated, err := tui.FooterForm(*current)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		return err
	}

	message, err := action.RunWithSpinner(cmd, "Updating footer...", func(ctx context.Context) (string, error) {
		start := time.Now()
		msg, err := client.UpdateFooter(ctx, *updated)
		_ = auditlog.Record("sirictl footer update", "footer", "", "", nil, start, err)
		return msg, err
	})
	if err != nil {
		return fmt.Errorf("failed to update footer: %w", err)
	}

	if message == "" {
		message = "Footer updated."
	}
	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}
