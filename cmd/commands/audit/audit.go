package audit

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "audit" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect the local audit trail",
		Long: `Inspect the local audit trail of admin mutations.

Every approve, reject, verify, toggle, create, update, and delete is
recorded in a local SQLite database under the user config directory.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(PruneCommand())

	return cmd
}
