package layout

import "github.com/SEGHAIRII/colscan/model"

// centeredBox pairs a text box with its horizontal center
type centeredBox struct {
	cx  float64
	box model.BBox
}

// gutterCandidate is a potential column divider between two adjacent
// centers in the sorted sequence
type gutterCandidate struct {
	midpoint float64 // X coordinate of the divider
	gap      float64 // distance between the two centers
	split    int     // index of the left member in the sorted sequence
}

// findGutter scans adjacent pairs of sorted centers for the widest gap
// whose midpoint falls inside the central search band of the layout.
// Ties keep the first candidate in ascending center order.
func (d *Detector) findGutter(sorted []centeredBox, layoutXStart, layoutWidth float64) (gutterCandidate, bool) {
	low := layoutXStart + layoutWidth*d.config.GutterSearchLow
	high := layoutXStart + layoutWidth*d.config.GutterSearchHigh

	var best gutterCandidate
	found := false

	for i := 0; i < len(sorted)-1; i++ {
		midpoint := (sorted[i].cx + sorted[i+1].cx) / 2
		gap := sorted[i+1].cx - sorted[i].cx

		if midpoint < low || midpoint > high || gap <= 0 {
			continue
		}
		if !found || gap > best.gap {
			best = gutterCandidate{midpoint: midpoint, gap: gap, split: i}
			found = true
		}
	}

	return best, found
}
