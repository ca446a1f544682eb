package auth

import (
	"context"
	"fmt"
	"os"
	"strings"

	"sirivaram/sirictl/internal/api"
	"sirivaram/sirictl/internal/session"
	"sirivaram/sirictl/internal/util"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		Long: `Log in with an admin mobile number and password. The bearer token is
stored in the OS keychain; the profile is cached locally for status output.

Example:
  sirictl auth login --mobile 9876543210`,
		RunE:         runLogin,
		SilenceUsage: true,
	}

	cmd.Flags().String("mobile", "", "Admin mobile number (prompted when omitted)")
	cmd.Flags().String("password", "", "Password (optional, overrides prompt)")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	mobile, _ := cmd.Flags().GetString("mobile")
	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		fmt.Fprint(os.Stdout, "Mobile number: ")
		if _, err := fmt.Fscanln(os.Stdin, &mobile); err != nil {
			return fmt.Errorf("failed to read mobile number: %w", err)
		}
	}
	if err := util.ValidateMobile(mobile); err != nil {
		return err
	}

	password, _ := cmd.Flags().GetString("password")
	password = strings.TrimSpace(password)
	if password == "" {
		fmt.Fprint(os.Stdout, "Password: ")
		bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stdout)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimSpace(string(bytes))
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	client, err := api.Resolve()
	if err != nil {
		return err
	}

	result, err := client.Login(context.Background(), api.Credentials{
		Mobile:   mobile,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := session.Default().Login(result.Token, result.User); err != nil {
		return err
	}

	who := result.User.Name
	if who == "" {
		who = mobile
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", who)
	return nil
}
