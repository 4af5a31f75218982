package layout

import (
	"math"

	"github.com/SEGHAIRII/colscan/model"
)

// DefaultRowGapCeiling is the seed value for MinRowGap: the gap
// returned when no pair of same-row boxes produces a smaller one.
const DefaultRowGapCeiling = 900.0

// SameRow reports whether two text boxes sit side by side on the same
// text row: their vertical centers are within margin of each other and
// their horizontal ranges overlap by less than half the narrower box's
// width. Zero-width boxes are treated as horizontally separate.
func SameRow(a, b model.BBox, margin float64) bool {
	if math.Abs(a.CenterY()-b.CenterY()) > margin {
		return false
	}

	narrower := math.Min(a.Width(), b.Width())
	if narrower == 0 {
		return true
	}
	return a.HorizontalOverlap(b) < 0.5*narrower
}

// MinRowGap returns the smallest positive horizontal gap between boxes
// sharing a row in the layout, considering every box pair. The ceiling
// seeds the search and is returned unchanged when fewer than two boxes
// exist or no pair beats it; DefaultRowGapCeiling is the usual choice.
func MinRowGap(l model.Layout, margin, ceiling float64) float64 {
	if len(l.TextBoxes) < 2 {
		return ceiling
	}

	minGap := ceiling
	for i := 0; i < len(l.TextBoxes); i++ {
		for j := i + 1; j < len(l.TextBoxes); j++ {
			a, b := l.TextBoxes[i], l.TextBoxes[j]
			if !SameRow(a, b, margin) {
				continue
			}

			var gap float64
			if a.CenterX() < b.CenterX() {
				gap = b.XStart - a.XEnd
			} else {
				gap = a.XStart - b.XEnd
			}
			if gap > 0 && gap < minGap {
				minGap = gap
			}
		}
	}

	return minGap
}
