package payments

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
		Short: "List event payments",
		Long: `List event payments.

On a terminal this opens the interactive browser with search, paging,
and verify/reject/delete actions. Pass --output for scripted use.

Examples:
  sirictl payments list
  sirictl payments list --status PENDING_VERIFICATION
  sirictl payments list --event 42 -o json`,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().String("status", "", "Server-side status filter (e.g. PENDING_VERIFICATION)")
	cmd.Flags().String("event", "", "Only payments for this event ID")
	cmd.Flags().StringP("output", "o", "", "Output format: table or json (default: interactive on a terminal)")
	listflags.Register(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	status, _ := cmd.Flags().GetString("status")
	eventID, _ := cmd.Flags().GetString("event")
	output, _ := cmd.Flags().GetString("output")

	client, err := api.Resolve()
	if err != nil {
		return err
	}

	fetch := func(ctx context.Context) ([]domain.Payment, error) {
		if eventID != "" {
			return client.ListPaymentsByEvent(ctx, eventID)
		}
		return client.ListPayments(ctx, status)
	}

	if output == "" && !listflags.Scripted(cmd) && term.IsTerminal(int(os.Stdout.Fd())) {
		return browsePayments(client, fetch)
	}
	if output == "" {
		output = "table"
	}

	payments, err := fetch(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list payments: %w", err)
	}
	payments = listflags.Apply(cmd, payments, domain.Payment.SearchText)

	if output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(payments)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	if len(payments) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No payments found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tPAYER\tEVENT\tAMOUNT\tMETHOD\tREFERENCE\tSTATUS")
	fmt.Fprintln(w, "--\t-----\t-----\t------\t------\t---------\t------")
	for _, p := range payments {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.PayerName, p.EventName, p.AmountLabel(), p.Method, p.Reference, p.Status)
	}
	w.Flush()
	return nil
}

func browsePayments(client *api.Client, fetch func(ctx context.Context) ([]domain.Payment, error)) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	return tui.RunBrowse(tui.BrowseConfig[domain.Payment]{
		Breadcrumb:   "payments",
		EmptyMessage: "No payments recorded yet.",
		PageSize:     cfg.ListPageSize(),
		ID:           func(p domain.Payment) string { return p.ID },
		SearchText:   domain.Payment.SearchText,
		Columns: []tui.Column[domain.Payment]{
			{Title: "PAYER", Width: 20, Flex: true, Value: func(p domain.Payment) string { return p.PayerName }},
			{Title: "EVENT", Width: 18, Value: func(p domain.Payment) string { return p.EventName }},
			{Title: "AMOUNT", Width: 12, Value: domain.Payment.AmountLabel},
			{Title: "METHOD", Width: 10, Value: func(p domain.Payment) string { return p.Method }},
			{Title: "REFERENCE", Width: 16, Value: func(p domain.Payment) string { return p.Reference }},
			{Title: "STATUS", Width: 22, Status: true, Value: func(p domain.Payment) string { return p.Status }},
		},
		Fetch: fetch,
		Actions: []tui.RowAction[domain.Payment]{
			{
				Kind:    listview.ActionVerify,
				Key:     "v",
				Label:   "verify",
				Enabled: domain.Payment.CanVerify,
				Confirm: func(p domain.Payment) string {
					return fmt.Sprintf("Verify %s from %s (ref %s)?", p.AmountLabel(), p.PayerName, p.Reference)
				},
				Invoke: func(ctx context.Context, p domain.Payment) (string, error) {
					start := time.Now()
					msg, err := client.VerifyPayment(ctx, p.ID)
					_ = auditlog.Record("sirictl payments verify", "payment", p.ID, p.PayerName, nil, start, err)
					return msg, err
				},
			},
			{
				Kind:    listview.ActionReject,
				Key:     "x",
				Label:   "reject",
				Enabled: domain.Payment.CanReject,
				Confirm: func(p domain.Payment) string {
					return fmt.Sprintf("Reject %s from %s?", p.AmountLabel(), p.PayerName)
				},
				Invoke: func(ctx context.Context, p domain.Payment) (string, error) {
					start := time.Now()
					msg, err := client.RejectPayment(ctx, p.ID)
					_ = auditlog.Record("sirictl payments reject", "payment", p.ID, p.PayerName, nil, start, err)
					return msg, err
				},
			},
			{
				Kind:        listview.ActionDelete,
				Key:         "d",
				Label:       "delete",
				Destructive: true,
				Confirm: func(p domain.Payment) string {
					return fmt.Sprintf("Delete the %s payment from %s permanently? This cannot be undone.",
						p.AmountLabel(), p.PayerName)
				},
				Invoke: func(ctx context.Context, p domain.Payment) (string, error) {
					start := time.Now()
					msg, err := client.DeletePayment(ctx, p.ID)
					_ = auditlog.Record("sirictl payments delete", "payment", p.ID, p.PayerName, nil, start, err)
					return msg, err
				},
			},
		},
	})
}
