package payments

import (
	"context"
	"time"

	"sirivaram/sirictl/cmd/commands/internal/action"
	"sirivaram/sirictl/internal/api"
	"sirivaram/sirictl/internal/auditlog"

	"github.com/spf13/cobra"
)

// VerifyCommand returns the scripted "payments verify" command.
func VerifyCommand() *cobra.Command {
	return action.Command(action.Spec{
		Use:      "verify <id>",
		Short:    "Verify a pending payment",
		Confirm:  "Verify this payment against the bank reference?",
		Progress: "Verifying payment...",
		Done:     "Payment verified.",
		Invoke: func(ctx context.Context, client *api.Client, id string) (string, error) {
			start := time.Now()
			msg, err := client.VerifyPayment(ctx, id)
			_ = auditlog.Record("sirictl payments verify", "payment", id, "", nil, start, err)
			return msg, err
		},
	})
}

// RejectCommand returns the scripted "payments reject" command.
func RejectCommand() *cobra.Command {
	return action.Command(action.Spec{
		Use:      "reject <id>",
		Short:    "Reject a pending payment",
		Confirm:  "Reject this payment?",
		Progress: "Rejecting payment...",
		Done:     "Payment rejected.",
		Invoke: func(ctx context.Context, client *api.Client, id string) (string, error) {
			start := time.Now()
			msg, err := client.RejectPayment(ctx, id)
			_ = auditlog.Record("sirictl payments reject", "payment", id, "", nil, start, err)
			return msg, err
		},
	})
}

// DeleteCommand returns the scripted "payments delete" command.
func DeleteCommand() *cobra.Command {
	return action.Command(action.Spec{
		Use:      "delete <id>",
		Short:    "Delete a payment record permanently",
		Confirm:  "Delete this payment record? This action cannot be undone.",
		Progress: "Deleting payment...",
		Done:     "Payment deleted.",
		Invoke: func(ctx context.Context, client *api.Client, id string) (string, error) {
			start := time.Now()
			msg, err := client.DeletePayment(ctx, id)
			_ = auditlog.Record("sirictl payments delete", "payment", id, "", nil, start, err)
			return msg, err
		},
	})
}
