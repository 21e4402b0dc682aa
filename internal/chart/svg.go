// Package chart renders a schematic of the loaded barbell as SVG: the
// final set on top, the drop set below, plates drawn as vertical bars
// whose width scales with their weight. The renderer only consumes
// loadouts; it imposes nothing back on the solver.
package chart

import (
	"fmt"
	"strings"

	"github.com/rcweston90/Weight2Plate/internal/plates"
)

const (
	canvasWidth  = 880
	canvasHeight = 400
	barLength    = 760
	sleeveLength = 140
	barThickness = 8
	plateHeight  = 120
)

// plateColors cycle per plate position, matching the original schematic.
var plateColors = []string{"#d62728", "#1f77b4", "#e7ba52", "#2ca02c", "#f0f0f0", "#111111"}

// Render draws the final and drop loadouts on two stacked bars and
// returns the SVG document.
func Render(final, drop plates.Loadout, denoms plates.Denominations, unit plates.Unit) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" font-family="sans-serif">`+"\n",
		canvasWidth, canvasHeight)

	maxPlate := denoms.Largest()
	drawBar(&b, 110, "Final Set", final, maxPlate, unit)
	drawBar(&b, 290, "Drop Set", drop, maxPlate, unit)

	b.WriteString("</svg>\n")
	return []byte(b.String())
}

func drawBar(b *strings.Builder, y int, label string, l plates.Loadout, maxPlate float64, unit plates.Unit) {
	left := (canvasWidth - barLength) / 2

	// Bar shaft and sleeves.
	fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" fill="#9e9e9e"/>`+"\n",
		left, y-barThickness/2, barLength, barThickness)
	fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" fill="#6e6e6e"/>`+"\n",
		left, y-barThickness, sleeveLength, barThickness*2)
	fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" fill="#6e6e6e"/>`+"\n",
		left+barLength-sleeveLength, y-barThickness, sleeveLength, barThickness*2)

	fmt.Fprintf(b, `<text x="%d" y="%d" font-size="16" text-anchor="middle">%s: %.2f %s per side</text>`+"\n",
		canvasWidth/2, y-plateHeight/2-24, label, l.Total, unit)

	// Plates load inward from each sleeve, heaviest at the collar.
	weights := l.Flatten()
	leftPos := float64(left + sleeveLength)
	rightPos := float64(left + barLength - sleeveLength)
	for i, w := range weights {
		pw := plateWidth(w, maxPlate)
		color := plateColors[i%len(plateColors)]
		ph := plateHeightFor(w, maxPlate)

		fmt.Fprintf(b, `<rect x="%.1f" y="%d" width="%.1f" height="%d" fill="%s" stroke="#333"/>`+"\n",
			leftPos-pw, y-ph/2, pw, ph, color)
		fmt.Fprintf(b, `<rect x="%.1f" y="%d" width="%.1f" height="%d" fill="%s" stroke="#333"/>`+"\n",
			rightPos, y-ph/2, pw, ph, color)
		fmt.Fprintf(b, `<text x="%.1f" y="%d" font-size="11" text-anchor="middle">%v</text>`+"\n",
			rightPos+pw/2, y-ph/2-6, w)

		leftPos -= pw
		rightPos += pw
	}
}

// plateWidth scales the drawn width with the plate's share of the
// heaviest denomination, matching the original proportions.
func plateWidth(w, maxPlate float64) float64 {
	return 8 + (w/maxPlate)*14
}

// plateHeightFor shrinks light plates so the silhouette reads like a
// real bar.
func plateHeightFor(w, maxPlate float64) int {
	h := int(float64(plateHeight) * (0.45 + 0.55*w/maxPlate))
	return h
}
