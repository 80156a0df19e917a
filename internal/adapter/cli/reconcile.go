package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Fetch a provider resource, store its snapshot and print it",
}

var reconcilePaymentCmd = &cobra.Command{
	Use:   "payment <id>",
	Short: "Reconcile one payment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithDependencies(cmd, func(ctx context.Context, d dependencies) (any, error) {
			return d.billing.SyncPayment(ctx, args[0])
		})
	},
}

var reconcileSubscriptionCmd = &cobra.Command{
	Use:   "subscription <id>",
	Short: "Reconcile one subscription",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithDependencies(cmd, func(ctx context.Context, d dependencies) (any, error) {
			return d.billing.SyncSubscription(ctx, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
	reconcileCmd.AddCommand(reconcilePaymentCmd)
	reconcileCmd.AddCommand(reconcileSubscriptionCmd)
}

func runWithDependencies(cmd *cobra.Command, op func(ctx context.Context, d dependencies) (any, error)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	deps, err := buildDependencies(ctx)
	if err != nil {
		return err
	}
	defer deps.cleanup()

	snapshot, err := op(ctx, deps)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), snapshot)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
