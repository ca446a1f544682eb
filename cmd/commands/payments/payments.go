package payments

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "payments" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Verify and manage event payments",
		Long: `Verify and manage event payments.

Submitted payments start PENDING_VERIFICATION. Check them against the
bank reference, then verify or reject from the interactive browser
("sirictl payments list" on a terminal) or with the scripted
subcommands.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(VerifyCommand())
	cmd.AddCommand(RejectCommand())
	cmd.AddCommand(DeleteCommand())
	cmd.AddCommand(StatsCommand())

	return cmd
}
