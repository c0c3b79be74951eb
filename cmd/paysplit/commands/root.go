package commands

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var logLevel string

func Execute() error {
	root := &cobra.Command{
		Use:   "paysplit",
		Short: "Split payments into treasury, team, and referrer shares",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
				return err
			}
			slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: lvl})))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(planCmd(), disburseCmd())
	return root.Execute()
}
