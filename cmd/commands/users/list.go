package users

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
		Short: "List registered members",
		Long: `List registered members.

On a terminal this opens the interactive browser with search, paging,
and approve/reject/delete actions. Pass --output for scripted use.

Examples:
  sirictl users list
  sirictl users list -o table
  sirictl users list -o json`,
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
		return browseUsers(client)
	}
	if output == "" {
		output = "table"
	}

	users, err := client.ListUsers(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	users = listflags.Apply(cmd, users, domain.User.SearchText)

	if output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(users)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	if len(users) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No users found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMOBILE\tVILLAGE\tROLE\tSTATUS")
	fmt.Fprintln(w, "--\t----\t------\t-------\t----\t------")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Name, u.Mobile, u.Village, u.Role, u.Status)
	}
	w.Flush()
	return nil
}

func browseUsers(client *api.Client) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	return tui.RunBrowse(tui.BrowseConfig[domain.User]{
		Breadcrumb:   "users",
		EmptyMessage: "No users registered yet.",
		PageSize:     cfg.ListPageSize(),
		ID:           func(u domain.User) string { return u.ID },
		SearchText:   domain.User.SearchText,
		Columns: []tui.Column[domain.User]{
			{Title: "NAME", Width: 22, Flex: true, Value: func(u domain.User) string { return u.Name }},
			{Title: "MOBILE", Width: 14, Value: func(u domain.User) string { return u.Mobile }},
			{Title: "VILLAGE", Width: 16, Value: func(u domain.User) string { return u.Village }},
			{Title: "ROLE", Width: 10, Value: func(u domain.User) string { return u.Role }},
			{Title: "STATUS", Width: 12, Status: true, Value: func(u domain.User) string { return u.Status }},
		},
		Fetch: client.ListUsers,
		Actions: []tui.RowAction[domain.User]{
			{
				Kind:    listview.ActionApprove,
				Key:     "a",
				Label:   "approve",
				Enabled: domain.User.CanApprove,
				Confirm: func(u domain.User) string {
					return fmt.Sprintf("Approve %s (%s)?", u.Name, u.Mobile)
				},
				Invoke: func(ctx context.Context, u domain.User) (string, error) {
					start := time.Now()
					msg, err := client.ApproveUser(ctx, u.ID)
					_ = auditlog.Record("sirictl users approve", "user", u.ID, u.Name, nil, start, err)
					return msg, err
				},
			},
			{
				Kind:    listview.ActionReject,
				Key:     "x",
				Label:   "reject",
				Enabled: domain.User.CanReject,
				Confirm: func(u domain.User) string {
					return fmt.Sprintf("Reject %s (%s)?", u.Name, u.Mobile)
				},
				Invoke: func(ctx context.Context, u domain.User) (string, error) {
					start := time.Now()
					msg, err := client.RejectUser(ctx, u.ID)
					_ = auditlog.Record("sirictl users reject", "user", u.ID, u.Name, nil, start, err)
					return msg, err
				},
			},
			{
				Kind:        listview.ActionDelete,
				Key:         "d",
				Label:       "delete",
				Destructive: true,
				Confirm: func(u domain.User) string {
					return fmt.Sprintf("Delete %s permanently? This cannot be undone.", u.Name)
				},
				Invoke: func(ctx context.Context, u domain.User) (string, error) {
					start := time.Now()
					msg, err := client.DeleteUser(ctx, u.ID)
					_ = auditlog.Record("sirictl users delete", "user", u.ID, u.Name, nil, start, err)
					return msg, err
				},
			},
		},
	})
}
