package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rcweston90/Weight2Plate/internal/barbell"
	"github.com/rcweston90/Weight2Plate/internal/plates"
	"github.com/rcweston90/Weight2Plate/internal/sets"
)

func newCalcCmd() *cobra.Command {
	var (
		unitFlag    string
		barbellID   string
		barWeight   float64
		sideWeight  float64
		dropPercent float64
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute final and drop set loadouts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			unit, err := plates.ParseUnit(unitFlag)
			if err != nil {
				return err
			}

			bw := barWeight
			if !cmd.Flags().Changed("bar-weight") {
				b, err := barbell.Lookup(barbellID)
				if err != nil {
					return err
				}
				bw = b.Weight(unit)
			}
			if bw < 0 {
				return fmt.Errorf("bar weight must not be negative")
			}
			if sideWeight < 0 {
				return fmt.Errorf("side weight must not be negative")
			}

			result := sets.ComputeDropSet(sets.Params{
				FinalSideWeight: sideWeight,
				BarWeight:       bw,
				DropPercent:     dropPercent,
			}, plates.ForUnit(unit))

			renderResult(cmd.OutOrStdout(), result, unit)
			return nil
		},
	}

	cmd.Flags().StringVarP(&unitFlag, "unit", "u", "lbs", "unit system (lbs or kg)")
	cmd.Flags().StringVarP(&barbellID, "barbell", "b", "standard", "barbell type (see `w2p barbells`)")
	cmd.Flags().Float64Var(&barWeight, "bar-weight", 0, "explicit bar weight, overrides --barbell")
	cmd.Flags().Float64VarP(&sideWeight, "side", "s", 0, "final set plate weight per side")
	cmd.Flags().Float64VarP(&dropPercent, "drop", "d", 75, "percent of the final set weight kept for the drop set")
	cmd.MarkFlagRequired("side")
	return cmd
}

func renderResult(w io.Writer, r sets.Result, unit plates.Unit) {
	fmt.Fprintf(w, "Final set weight:   %.2f %s\n", r.FinalSetWeight, unit)
	fmt.Fprintf(w, "Weight to remove:   %.2f %s\n", r.WeightToRemove, unit)
	fmt.Fprintf(w, "Drop set weight:    %.2f %s\n", r.DropSetWeight, unit)
	fmt.Fprintf(w, "Drop set per side:  %.2f %s\n", r.DropSetPerSide, unit)

	fmt.Fprintln(w, "\nFinal set (per side):")
	renderLoadout(w, r.FinalPlates, unit)
	fmt.Fprintln(w, "\nDrop set (per side):")
	renderLoadout(w, r.DropPlates, unit)
}

func renderLoadout(w io.Writer, l plates.Loadout, unit plates.Unit) {
	if len(l.Plates) == 0 {
		fmt.Fprintln(w, "  no plates")
	}
	for _, p := range l.Plates {
		fmt.Fprintf(w, "  %dx %v %s\n", p.Count, p.Weight, unit)
	}
	if l.Residual > 0 {
		fmt.Fprintf(w, "  (%v %s cannot be loaded with available plates)\n", l.Residual, unit)
	}
}
