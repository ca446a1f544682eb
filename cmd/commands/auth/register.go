package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"sirivaram/sirictl/internal/api"
	"sirivaram/sirictl/internal/util"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func RegisterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		Long: `Register a new member account. Accounts start PENDING and must be
approved by an existing admin before they can log in.

Example:
  sirictl auth register --name "Raj Kumar" --mobile 9876543210 --village Sirivaram`,
		RunE:         runRegister,
		SilenceUsage: true,
	}

	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("mobile", "", "Mobile number")
	cmd.Flags().String("village", "", "Village")
	cmd.Flags().String("password", "", "Password (optional, overrides prompt)")

	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	in := api.RegisterInput{}
	in.Name, _ = cmd.Flags().GetString("name")
	in.Mobile, _ = cmd.Flags().GetString("mobile")
	in.Village, _ = cmd.Flags().GetString("village")
	in.Password, _ = cmd.Flags().GetString("password")

	// Prompt interactively for whatever the flags left blank.
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Mobile) == "" || strings.TrimSpace(in.Village) == "" {
		accessible := os.Getenv("ACCESSIBLE") != ""
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Full name").
					Value(&in.Name).
					Validate(func(s string) error {
						return util.ValidateRequired("name", s)
					}),
				huh.NewInput().
					Title("Mobile number").
					Value(&in.Mobile).
					Validate(util.ValidateMobile),
				huh.NewInput().
					Title("Village").
					Value(&in.Village).
					Validate(func(s string) error {
						return util.ValidateRequired("village", s)
					}),
			),
		).WithAccessible(accessible)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return fmt.Errorf("registration cancelled")
			}
			return err
		}
	}
	if err := util.ValidateMobile(in.Mobile); err != nil {
		return err
	}

	if strings.TrimSpace(in.Password) == "" {
		fmt.Fprint(os.Stdout, "Password: ")
		bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stdout)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		in.Password = strings.TrimSpace(string(bytes))
	}
	if in.Password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	client, err := api.Resolve()
	if err != nil {
		return err
	}

	message, err := client.Register(context.Background(), in)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	if message == "" {
		message = "Registered. An admin must approve the account before login."
	}
	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}
