package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"sirivaram/sirictl/internal/api"
	"sirivaram/sirictl/internal/domain"
	"sirivaram/sirictl/internal/tui/components"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

const statsDays = 30

func StatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize payments by status and over time",
		Long: `Summarize payments: totals per status and a daily volume chart for
the last 30 days.

Examples:
  sirictl payments stats
  sirictl payments stats -o json`,
		RunE:         runStats,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

type statusTotals struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

func runStats(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}

	client, err := api.Resolve()
	if err != nil {
		return err
	}

	payments, err := client.ListPayments(context.Background(), "")
	if err != nil {
		return fmt.Errorf("failed to list payments: %w", err)
	}

	totals := summarize(payments)

	if output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(totals)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	if len(payments) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No payments recorded.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "STATUS\tCOUNT\tAMOUNT")
	fmt.Fprintln(w, "------\t-----\t------")
	for _, t := range totals {
		fmt.Fprintf(w, "%s\t%d\t₹%.2f\n", t.Status, t.Count, t.Amount)
	}
	w.Flush()

	// Daily volume chart, terminal only.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width < 40 {
			width = 80
		}
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), components.Sparkline(
			fmt.Sprintf("Payments per day (last %d days)", statsDays),
			dailyCounts(payments, statsDays),
			width,
			"",
		))
	}
	return nil
}

// summarize folds payments into per-status counts and amounts, ordered
// pending first.
func summarize(payments []domain.Payment) []statusTotals {
	byStatus := make(map[string]*statusTotals)
	for _, p := range payments {
		t, ok := byStatus[p.Status]
		if !ok {
			t = &statusTotals{Status: p.Status}
			byStatus[p.Status] = t
		}
		t.Count++
		t.Amount += p.Amount
	}

	rank := map[string]int{
		domain.PaymentPendingVerification: 0,
		domain.PaymentVerified:            1,
		domain.PaymentRejected:            2,
	}

	totals := make([]statusTotals, 0, len(byStatus))
	for _, t := range byStatus {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool {
		ri, iKnown := rank[totals[i].Status]
		rj, jKnown := rank[totals[j].Status]
		if iKnown != jKnown {
			return iKnown
		}
		if ri != rj {
			return ri < rj
		}
		return totals[i].Status < totals[j].Status
	})
	return totals
}

// dailyCounts returns one data point per day for the trailing window,
// oldest first.
func dailyCounts(payments []domain.Payment, days int) []float64 {
	today := time.Now().Truncate(24 * time.Hour)
	counts := make([]float64, days)
	for _, p := range payments {
		if p.CreatedAt.IsZero() {
			continue
		}
		age := int(today.Sub(p.CreatedAt.Truncate(24*time.Hour)).Hours() / 24)
		if age < 0 || age >= days {
			continue
		}
		counts[days-1-age]++
	}
	return counts
}
