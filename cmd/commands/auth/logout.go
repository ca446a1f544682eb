package auth

import (
	"fmt"

	"sirivaram/sirictl/internal/session"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		Long: `Remove the bearer token from the OS keychain and delete the cached
profile. Logging out when not logged in is not an error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := session.Default().Logout(); err != nil {
				return fmt.Errorf("logout failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
