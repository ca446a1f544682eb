package users

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "users" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Review and manage member registrations",
		Long: `Review and manage member registrations.

New registrations start PENDING. Approve or reject them from the
interactive browser ("sirictl users list" on a terminal) or with the
scripted subcommands.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ApproveCommand())
	cmd.AddCommand(RejectCommand())
	cmd.AddCommand(DeleteCommand())

	return cmd
}
