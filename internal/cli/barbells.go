package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcweston90/Weight2Plate/internal/barbell"
)

func newBarbellsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "barbells",
		Short: "List supported barbell types",
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-10s %-30s %8s %8s\n", "ID", "NAME", "KG", "LBS")
			for _, b := range barbell.All() {
				fmt.Fprintf(w, "%-10s %-30s %8.1f %8.1f\n", b.ID, b.Name, b.KG, b.Pounds)
			}
		},
	}
}
