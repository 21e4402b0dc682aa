package plates

// PlateCount is a denomination and how many of it to load on one side.
type PlateCount struct {
	Weight float64 `json:"weight"`
	Count  int     `json:"count"`
}

// Loadout is the plate combination for one side of the bar, heaviest
// first, plus the total plate weight and the residual that the available
// denominations cannot represent. The residual is always smaller than the
// smallest denomination.
type Loadout struct {
	Plates   []PlateCount `json:"plates"`
	Total    float64      `json:"total"`
	Residual float64      `json:"residual"`
}

// Flatten expands the loadout into individual plate weights in loading
// order (heaviest first, closest to the collar).
func (l Loadout) Flatten() []float64 {
	var out []float64
	for _, p := range l.Plates {
		for i := 0; i < p.Count; i++ {
			out = append(out, p.Weight)
		}
	}
	return out
}

// Solve computes the greedy plate combination for one side of the bar.
// Denominations are tried heaviest first; each takes as many plates as
// fit into the remaining weight. The result total is the largest
// denomination-representable weight not exceeding perSideWeight.
//
// A negative perSideWeight means nothing fits (callers may pass raw
// subtraction results) and yields an empty loadout rather than an error.
func Solve(perSideWeight float64, denoms Denominations) Loadout {
	out := Loadout{Plates: []PlateCount{}}

	remaining := toHundredths(perSideWeight)
	if remaining <= 0 {
		return out
	}

	target := remaining
	for _, h := range denoms.hundredths {
		count := remaining / h
		if count > 0 {
			out.Plates = append(out.Plates, PlateCount{
				Weight: fromHundredths(h),
				Count:  int(count),
			})
			remaining -= count * h
		}
	}

	out.Total = fromHundredths(target - remaining)
	out.Residual = fromHundredths(remaining)
	return out
}
