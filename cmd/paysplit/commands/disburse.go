package commands

import (
	"fmt"
	"log/slog"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/cobra"

	"github.com/paysplitorg/libpaysplit-go/config"
	"github.com/paysplitorg/libpaysplit-go/disburse"
	"github.com/paysplitorg/libpaysplit-go/split"
)

// disburse --amount N [--first-referrer] [--second-referrer]: compute the
// plan and submit it to the configured RPC endpoint as one transaction.
func disburseCmd() *cobra.Command {
	var (
		amount uint64
		first  bool
		second bool
	)

	cmd := &cobra.Command{
		Use:   "disburse",
		Short: "Compute a plan and submit it as one atomic transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			payer, err := cfg.PayerKey()
			if err != nil {
				return fmt.Errorf("load payer key: %w", err)
			}
			recipients, err := cfg.Recipients()
			if err != nil {
				return err
			}

			exec, err := disburse.New(disburse.Config{
				Logger:     slog.Default(),
				Ledger:     disburse.NewRPCLedger(rpc.New(cfg.RPCEndpoint)),
				Payer:      payer,
				Recipients: recipients,
			})
			if err != nil {
				return err
			}

			plan, err := split.ComputePlan(split.DefaultParams(), split.PaymentRequest{
				Amount:            amount,
				HasFirstReferrer:  first,
				HasSecondReferrer: second,
			})
			if err != nil {
				return err
			}

			sig, err := exec.Disburse(cmd.Context(), plan)
			if err != nil {
				return err
			}
			fmt.Println(sig.String())
			return nil
		},
	}

	cmd.Flags().Uint64Var(&amount, "amount", 0, "payment amount in base units")
	cmd.Flags().BoolVar(&first, "first-referrer", false, "a first referrer is present")
	cmd.Flags().BoolVar(&second, "second-referrer", false, "a second referrer is present")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
