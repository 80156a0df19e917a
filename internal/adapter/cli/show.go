package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored snapshot of a resource without calling the provider",
}

var showPaymentCmd = &cobra.Command{
	Use:   "payment <id>",
	Short: "Print one stored payment snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithDependencies(cmd, func(ctx context.Context, d dependencies) (any, error) {
			return d.billing.StoredPayment(ctx, args[0])
		})
	},
}

var showSubscriptionCmd = &cobra.Command{
	Use:   "subscription <id>",
	Short: "Print one stored subscription snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithDependencies(cmd, func(ctx context.Context, d dependencies) (any, error) {
			return d.billing.StoredSubscription(ctx, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.AddCommand(showPaymentCmd)
	showCmd.AddCommand(showSubscriptionCmd)
}
