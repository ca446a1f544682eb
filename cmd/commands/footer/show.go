package footer

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"sirivaram/sirictl/internal/api"

	"github.com/spf13/cobra"
)

func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current footer content",
		Long: `Show the current footer content.

Examples:
  sirictl footer show
  sirictl footer show -o json`,
		RunE:         runShow,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}

	client, err := api.Resolve()
	if err != nil {
		return err
	}

	footer, err := client.GetFooter(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch footer: %w", err)
	}

	if output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(footer)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  About:\t%s\n", footer.About)
	fmt.Fprintf(w, "  Email:\t%s\n", footer.Email)
	fmt.Fprintf(w, "  Phone:\t%s\n", footer.Phone)
	fmt.Fprintf(w, "  Address:\t%s\n", footer.Address)
	if footer.Facebook != "" {
		fmt.Fprintf(w, "  Facebook:\t%s\n", footer.Facebook)
	}
	if footer.Instagram != "" {
		fmt.Fprintf(w, "  Instagram:\t%s\n", footer.Instagram)
	}
	if footer.YouTube != "" {
		fmt.Fprintf(w, "  YouTube:\t%s\n", footer.YouTube)
	}
	w.Flush()
	return nil
}
