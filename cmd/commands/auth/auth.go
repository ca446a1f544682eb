package auth

import (
	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the admin session",
		Long: `Manage the admin session.

Use this command group to register, log in, and inspect the stored
session. The bearer token lives in the OS keychain.`,
	}

	cmd.AddCommand(RegisterCommand())
	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(LogoutCommand())
	cmd.AddCommand(StatusCommand())

	return cmd
}
