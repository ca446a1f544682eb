package footer

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "footer" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "footer",
		Short: "Manage the site footer",
		Long: `Manage the site-wide footer: the about text, contact details, and
social links shown at the bottom of every public page. The footer is a
single document; there is nothing to list or delete.`,
	}

	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(UpdateCommand())

	return cmd
}
