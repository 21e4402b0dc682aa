// Package barbell holds the catalog of supported barbell types and their
// weights in each unit system.
package barbell

import (
	"fmt"

	"github.com/rcweston90/Weight2Plate/internal/plates"
)

// Barbell is one entry in the catalog.
type Barbell struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	KG     float64 `json:"kg"`
	Pounds float64 `json:"lbs"`
}

// Weight returns the bar weight in the given unit.
func (b Barbell) Weight(u plates.Unit) float64 {
	if u == plates.Kilograms {
		return b.KG
	}
	return b.Pounds
}

// catalog order matches the selection order presented to users.
var catalog = []Barbell{
	{ID: "olympic", Name: "Olympic (20kg/44lbs)", KG: 20, Pounds: 44},
	{ID: "standard", Name: "Standard (45lbs)", KG: 20.4, Pounds: 45},
	{ID: "womens", Name: "Women's Olympic (15kg/33lbs)", KG: 15, Pounds: 33},
	{ID: "ezcurl", Name: "EZ Curl Bar (18kg/40lbs)", KG: 18, Pounds: 40},
	{ID: "trap", Name: "Trap Bar (27kg/60lbs)", KG: 27, Pounds: 60},
}

// All returns the full catalog in presentation order.
func All() []Barbell {
	out := make([]Barbell, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a barbell by its ID.
func Lookup(id string) (Barbell, error) {
	for _, b := range catalog {
		if b.ID == id {
			return b, nil
		}
	}
	return Barbell{}, fmt.Errorf("unknown barbell %q", id)
}
