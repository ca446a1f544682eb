package auth

import (
	"errors"
	"fmt"

	"sirivaram/sirictl/internal/session"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the stored session",
		Long: `Show whether a session token is stored and which account it belongs to.

Example:
  sirictl auth status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := session.Default()

			if _, err := sess.Token(); err != nil {
				if errors.Is(err, session.ErrNotLoggedIn) {
					fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
					return nil
				}
				return fmt.Errorf("failed to read session: %w", err)
			}

			user, err := session.LoadUser()
			if err != nil {
				if errors.Is(err, session.ErrNotLoggedIn) {
					// Token present but no cached profile.
					fmt.Fprintln(cmd.OutOrStdout(), "Logged in.")
					return nil
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)", user.Name, user.Mobile)
			if user.Role != "" {
				fmt.Fprintf(cmd.OutOrStdout(), " [%s]", user.Role)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
