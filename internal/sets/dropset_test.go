package sets

import (
	"math"
	"reflect"
	"testing"

	"github.com/rcweston90/Weight2Plate/internal/plates"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestComputeDropSetChain verifies the full formula chain for a heavy
// bench single: 70 per side on a 45 lbs bar, keeping 25% for the drop.
func TestComputeDropSetChain(t *testing.T) {
	got := ComputeDropSet(Params{FinalSideWeight: 70, BarWeight: 45, DropPercent: 25}, plates.ForUnit(plates.Pounds))

	if !approx(got.FinalSetWeight, 185) {
		t.Errorf("FinalSetWeight = %v, want 185", got.FinalSetWeight)
	}
	if !approx(got.WeightToRemove, 138.75) {
		t.Errorf("WeightToRemove = %v, want 138.75", got.WeightToRemove)
	}
	if !approx(got.DropSetWeight, 46.25) {
		t.Errorf("DropSetWeight = %v, want 46.25", got.DropSetWeight)
	}
	if !approx(got.DropSetPerSide, 0.625) {
		t.Errorf("DropSetPerSide = %v, want 0.625", got.DropSetPerSide)
	}

	// 0.625 is below the smallest plate (2.5), so nothing loads.
	if len(got.DropPlates.Plates) != 0 {
		t.Errorf("DropPlates = %v, want empty", got.DropPlates.Plates)
	}

	// Final loadout is solved on the side weight, never the set total.
	wantFinal := []plates.PlateCount{
		{Weight: 45, Count: 1},
		{Weight: 25, Count: 1},
	}
	if !reflect.DeepEqual(got.FinalPlates.Plates, wantFinal) {
		t.Errorf("FinalPlates = %v, want %v", got.FinalPlates.Plates, wantFinal)
	}
}

// TestComputeDropSetKeep75 verifies the default configuration of the
// original form: keep 75% of the final set on the bar.
func TestComputeDropSetKeep75(t *testing.T) {
	got := ComputeDropSet(Params{FinalSideWeight: 70, BarWeight: 45, DropPercent: 75}, plates.ForUnit(plates.Pounds))

	if !approx(got.WeightToRemove, 46.25) {
		t.Errorf("WeightToRemove = %v, want 46.25", got.WeightToRemove)
	}
	if !approx(got.DropSetWeight, 138.75) {
		t.Errorf("DropSetWeight = %v, want 138.75", got.DropSetWeight)
	}
	if !approx(got.DropSetPerSide, 46.875) {
		t.Errorf("DropSetPerSide = %v, want 46.875", got.DropSetPerSide)
	}

	wantDrop := []plates.PlateCount{{Weight: 45, Count: 1}}
	if !reflect.DeepEqual(got.DropPlates.Plates, wantDrop) {
		t.Errorf("DropPlates = %v, want %v", got.DropPlates.Plates, wantDrop)
	}
	if !approx(got.DropPlates.Residual, 1.88) {
		t.Errorf("DropPlates.Residual = %v, want 1.88", got.DropPlates.Residual)
	}
}

// TestComputeDropSetZeroPercent verifies that keeping 0% strips the bar:
// everything is removed and the drop set weighs nothing.
func TestComputeDropSetZeroPercent(t *testing.T) {
	got := ComputeDropSet(Params{FinalSideWeight: 50, BarWeight: 45, DropPercent: 0}, plates.ForUnit(plates.Pounds))

	if !approx(got.WeightToRemove, got.FinalSetWeight) {
		t.Errorf("WeightToRemove = %v, want FinalSetWeight %v", got.WeightToRemove, got.FinalSetWeight)
	}
	if !approx(got.DropSetWeight, 0) {
		t.Errorf("DropSetWeight = %v, want 0", got.DropSetWeight)
	}
	// Per-side goes negative (0 - bar)/2; the solver returns empty.
	if got.DropSetPerSide >= 0 {
		t.Errorf("DropSetPerSide = %v, want negative", got.DropSetPerSide)
	}
	if len(got.DropPlates.Plates) != 0 {
		t.Errorf("DropPlates = %v, want empty", got.DropPlates.Plates)
	}
}

// TestComputeDropSetFullPercent verifies that keeping 100% removes
// nothing: the drop set equals the final set.
func TestComputeDropSetFullPercent(t *testing.T) {
	got := ComputeDropSet(Params{FinalSideWeight: 60, BarWeight: 20, DropPercent: 100}, plates.ForUnit(plates.Kilograms))

	if !approx(got.WeightToRemove, 0) {
		t.Errorf("WeightToRemove = %v, want 0", got.WeightToRemove)
	}
	if !approx(got.DropSetWeight, got.FinalSetWeight) {
		t.Errorf("DropSetWeight = %v, want FinalSetWeight %v", got.DropSetWeight, got.FinalSetWeight)
	}
	if !approx(got.DropSetPerSide, 60) {
		t.Errorf("DropSetPerSide = %v, want 60", got.DropSetPerSide)
	}
	if !reflect.DeepEqual(got.DropPlates, got.FinalPlates) {
		t.Errorf("DropPlates = %v, want same as FinalPlates %v", got.DropPlates, got.FinalPlates)
	}
}

// TestComputeDropSetPure verifies the computation has no hidden state:
// identical params give identical results.
func TestComputeDropSetPure(t *testing.T) {
	d := plates.ForUnit(plates.Kilograms)
	p := Params{FinalSideWeight: 31.75, BarWeight: 20, DropPercent: 75}
	a := ComputeDropSet(p, d)
	b := ComputeDropSet(p, d)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("ComputeDropSet not deterministic: %v vs %v", a, b)
	}
}
