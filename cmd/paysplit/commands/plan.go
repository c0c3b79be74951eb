package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paysplitorg/libpaysplit-go/split"
)

// plan --amount N [--first-referrer] [--second-referrer]: print the
// computed transfer plan without touching the network.
func planCmd() *cobra.Command {
	var (
		amount uint64
		first  bool
		second bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute a transfer plan for an amount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := split.ComputePlan(split.DefaultParams(), split.PaymentRequest{
				Amount:            amount,
				HasFirstReferrer:  first,
				HasSecondReferrer: second,
			})
			if err != nil {
				return err
			}
			for _, entry := range plan {
				fmt.Printf("%-16s %d\n", entry.Role, entry.Amount)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&amount, "amount", 0, "payment amount in base units")
	cmd.Flags().BoolVar(&first, "first-referrer", false, "a first referrer is present")
	cmd.Flags().BoolVar(&second, "second-referrer", false, "a second referrer is present")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
