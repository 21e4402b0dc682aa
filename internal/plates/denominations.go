// Package plates computes plate loadouts for one side of a barbell.
//
// All arithmetic is done in fixed point at hundredths of a unit (int64),
// so exactly-divisible targets (e.g. 62.5 against a 2.5 plate) never land
// one plate short the way naive float floor division can. Inputs are
// rounded to the nearest hundredth on entry.
package plates

import (
	"fmt"
	"math"
)

// Unit is a weight unit system.
type Unit string

const (
	Pounds    Unit = "lbs"
	Kilograms Unit = "kg"
)

// ParseUnit normalizes a unit string. Empty defaults to pounds.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "", "lbs", "lb", "pounds":
		return Pounds, nil
	case "kg", "kgs", "kilograms":
		return Kilograms, nil
	}
	return "", fmt.Errorf("unknown unit %q", s)
}

// Denominations is the fixed set of available plate weights in strictly
// descending order. The zero value is invalid; construct via
// NewDenominations or ForUnit.
type Denominations struct {
	hundredths []int64
}

// NewDenominations validates and builds a denomination set. Weights must
// be non-empty, strictly descending, and all positive.
func NewDenominations(weights ...float64) (Denominations, error) {
	if len(weights) == 0 {
		return Denominations{}, fmt.Errorf("denomination set is empty")
	}
	h := make([]int64, len(weights))
	for i, w := range weights {
		if w <= 0 {
			return Denominations{}, fmt.Errorf("denomination %v is not positive", w)
		}
		h[i] = toHundredths(w)
		if h[i] == 0 {
			return Denominations{}, fmt.Errorf("denomination %v is below 0.01 granularity", w)
		}
		if i > 0 && h[i] >= h[i-1] {
			return Denominations{}, fmt.Errorf("denominations not strictly descending at %v", w)
		}
	}
	return Denominations{hundredths: h}, nil
}

// ForUnit returns the standard plate set for a unit system.
func ForUnit(u Unit) Denominations {
	switch u {
	case Kilograms:
		return mustDenominations(20, 15, 10, 5, 2.5, 1.25)
	default:
		return mustDenominations(45, 35, 25, 10, 5, 2.5)
	}
}

func mustDenominations(weights ...float64) Denominations {
	d, err := NewDenominations(weights...)
	if err != nil {
		panic(err)
	}
	return d
}

// Weights returns the denominations in descending order.
func (d Denominations) Weights() []float64 {
	out := make([]float64, len(d.hundredths))
	for i, h := range d.hundredths {
		out[i] = fromHundredths(h)
	}
	return out
}

// Smallest returns the smallest denomination, the granularity of any
// loadout built from this set.
func (d Denominations) Smallest() float64 {
	return fromHundredths(d.hundredths[len(d.hundredths)-1])
}

// Largest returns the heaviest denomination.
func (d Denominations) Largest() float64 {
	return fromHundredths(d.hundredths[0])
}

func toHundredths(w float64) int64 {
	return int64(math.Round(w * 100))
}

func fromHundredths(h int64) float64 {
	return float64(h) / 100
}
