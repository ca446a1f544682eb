package users

import (
	"context"
	"time"

	"sirivaram/sirictl/cmd/commands/internal/action"
	"sirivaram/sirictl/internal/api"
	"sirivaram/sirictl/internal/auditlog"

	"github.com/spf13/cobra"
)

// ApproveCommand returns the scripted "users approve" command.
func ApproveCommand() *cobra.Command {
	return action.Command(action.Spec{
		Use:      "approve <id>",
		Short:    "Approve a pending registration",
		Confirm:  "Approve this registration?",
		Progress: "Approving user...",
		Done:     "User approved.",
		Invoke: func(ctx context.Context, client *api.Client, id string) (string, error) {
			start := time.Now()
			msg, err := client.ApproveUser(ctx, id)
			_ = auditlog.Record("sirictl users approve", "user", id, "", nil, start, err)
			return msg, err
		},
	})
}

// RejectCommand returns the scripted "users reject" command.
func RejectCommand() *cobra.Command {
	return action.Command(action.Spec{
		Use:      "reject <id>",
		Short:    "Reject a pending registration",
		Confirm:  "Reject this registration?",
		Progress: "Rejecting user...",
		Done:     "User rejected.",
		Invoke: func(ctx context.Context, client *api.Client, id string) (string, error) {
			start := time.Now()
			msg, err := client.RejectUser(ctx, id)
			_ = auditlog.Record("sirictl users reject", "user", id, "", nil, start, err)
			return msg, err
		},
	})
}

// DeleteCommand returns the scripted "users delete" command.
func DeleteCommand() *cobra.Command {
	return action.Command(action.Spec{
		Use:      "delete <id>",
		Short:    "Delete a user permanently",
		Confirm:  "Delete this user? This action cannot be undone.",
		Progress: "Deleting user...",
		Done:     "User deleted.",
		Invoke: func(ctx context.Context, client *api.Client, id string) (string, error) {
			start := time.Now()
			msg, err := client.DeleteUser(ctx, id)
			_ = auditlog.Record("sirictl users delete", "user", id, "", nil, start, err)
			return msg, err
		},
	})
}
