// Package sets derives drop-set weights from a final heavy set and solves
// the plate loadout for both sets.
package sets

import (
	"github.com/rcweston90/Weight2Plate/internal/plates"
)

// Params are the inputs for one drop-set calculation. FinalSideWeight and
// BarWeight are expected to be non-negative; DropPercent is the share of
// the final-set weight that stays on the bar for the drop set, normally
// in [0,100]. Values outside that range still compute well-defined
// results and are left to callers to police.
type Params struct {
	FinalSideWeight float64 `json:"final_side_weight"`
	BarWeight       float64 `json:"bar_weight"`
	DropPercent     float64 `json:"drop_percent"`
}

// Result carries the derived set weights plus the solved loadouts for
// one side of the bar.
type Result struct {
	FinalSetWeight float64 `json:"final_set_weight"`
	WeightToRemove float64 `json:"weight_to_remove"`
	DropSetWeight  float64 `json:"drop_set_weight"`
	DropSetPerSide float64 `json:"drop_set_per_side"`

	FinalPlates plates.Loadout `json:"final_plates"`
	DropPlates  plates.Loadout `json:"drop_plates"`
}

// ComputeDropSet applies the drop-set formulas in order:
//
//	finalSetWeight = finalSideWeight*2 + barWeight
//	weightToRemove = finalSetWeight * (1 - dropPercent/100)
//	dropSetWeight  = finalSetWeight - weightToRemove
//	dropSetPerSide = (dropSetWeight - barWeight) / 2
//
// The final loadout is solved on the side weight directly, not re-derived
// from the set total, so the bar is never double counted. The drop
// loadout is solved on dropSetPerSide, which can go negative when the bar
// alone outweighs the drop set; the solver then returns an empty loadout
// and no further special-casing happens here.
func ComputeDropSet(p Params, denoms plates.Denominations) Result {
	finalSet := p.FinalSideWeight*2 + p.BarWeight
	toRemove := finalSet * (1 - p.DropPercent/100)
	dropSet := finalSet - toRemove
	dropPerSide := (dropSet - p.BarWeight) / 2

	return Result{
		FinalSetWeight: finalSet,
		WeightToRemove: toRemove,
		DropSetWeight:  dropSet,
		DropSetPerSide: dropPerSide,
		FinalPlates:    plates.Solve(p.FinalSideWeight, denoms),
		DropPlates:     plates.Solve(dropPerSide, denoms),
	}
}
