// Package cli implements the w2p command line calculator.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "w2p",
		Short:        "Barbell plate calculator",
		SilenceUsage: true,
	}
	cmd.AddCommand(newCalcCmd())
	cmd.AddCommand(newBarbellsCmd())
	return cmd
}
