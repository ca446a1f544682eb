// Package action builds the scripted single-resource mutation commands
// (approve, reject, verify, delete) that every entity group exposes
// alongside its interactive browser.
package action

import (
	"context"
	"errors"
	"fmt"
	"os"

	"sirivaram/sirictl/internal/api"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"github.com/spf13/cobra"
)

// Spec describes one mutation command.
type Spec struct {
	Use      string
	Short    string
	Confirm  string
	Progress string
	Done     string

	// Invoke performs the mutation and returns the server message.
	Invoke func(ctx context.Context, client *api.Client, id string) (string, error)
}

// Command builds a one-argument mutation command with a confirmation
// gate. --yes skips the prompt for scripted use.
func Command(spec Spec) *cobra.Command {
	cmd := &cobra.Command{
		Use:          spec.Use,
		Short:        spec.Short,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			skipConfirm, _ := cmd.Flags().GetBool("yes")
			if !skipConfirm {
				confirmed, err := Confirm(spec.Confirm)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			client, err := api.Resolve()
			if err != nil {
				return err
			}

			message, err := RunWithSpinner(cmd, spec.Progress, func(ctx context.Context) (string, error) {
				return spec.Invoke(ctx, client, id)
			})
			if err != nil {
				return err
			}

			if message == "" {
				message = spec.Done
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// Confirm shows a yes/cancel prompt. A user abort counts as "no".
func Confirm(title string) (bool, error) {
	accessible := os.Getenv("ACCESSIBLE") != ""
	confirmed := false
	confirm := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("Cancel").
		Value(&confirmed)
	if err := huh.NewForm(huh.NewGroup(confirm)).WithAccessible(accessible).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}

// RunWithSpinner runs fn behind a progress spinner and returns its result.
func RunWithSpinner(cmd *cobra.Command, title string, fn func(ctx context.Context) (string, error)) (string, error) {
	var message string
	var fnErr error
	spinErr := spinner.New().
		Title(title).
		Accessible(os.Getenv("ACCESSIBLE") != "").
		Output(cmd.ErrOrStderr()).
		ActionWithErr(func(ctx context.Context) error {
			message, fnErr = fn(ctx)
			return nil
		}).
		Run()
	if spinErr != nil {
		return "", spinErr
	}
	return message, fnErr
}
