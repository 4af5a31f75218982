package layout

import (
	"math"
	"sort"

	"github.com/SEGHAIRII/colscan/model"
)

// column is one side of a candidate split, held only for the duration
// of validation
type column struct {
	boxes []model.BBox
}

// splitAt partitions the sorted sequence into a left column holding
// indices [0, split] and a right column holding the rest. Every box
// lands in exactly one column.
func splitAt(sorted []centeredBox, split int) (left, right column) {
	leftBoxes := make([]model.BBox, 0, split+1)
	for _, cb := range sorted[:split+1] {
		leftBoxes = append(leftBoxes, cb.box)
	}
	rightBoxes := make([]model.BBox, 0, len(sorted)-split-1)
	for _, cb := range sorted[split+1:] {
		rightBoxes = append(rightBoxes, cb.box)
	}
	return column{boxes: leftBoxes}, column{boxes: rightBoxes}
}

// count returns the number of boxes in the column
func (c column) count() int {
	return len(c.boxes)
}

// yExtent returns the vertical range covered by the column's boxes
func (c column) yExtent() (minY, maxY float64) {
	minY = c.boxes[0].YStart
	maxY = c.boxes[0].YEnd
	for _, box := range c.boxes[1:] {
		if box.YStart < minY {
			minY = box.YStart
		}
		if box.YEnd > maxY {
			maxY = box.YEnd
		}
	}
	return minY, maxY
}

// medianXStart returns the median left edge of the column's boxes
func (c column) medianXStart() float64 {
	edges := make([]float64, len(c.boxes))
	for i, box := range c.boxes {
		edges[i] = box.XStart
	}
	return median(edges)
}

// medianXEnd returns the median right edge of the column's boxes
func (c column) medianXEnd() float64 {
	edges := make([]float64, len(c.boxes))
	for i, box := range c.boxes {
		edges[i] = box.XEnd
	}
	return median(edges)
}

// validateColumns runs the structural checks on a candidate split, in
// order: population, horizontal separation, then vertical cohesion.
// Returns RejectNone when the split is a genuine two-column structure.
func (d *Detector) validateColumns(left, right column, layoutHeight float64) Reject {
	if left.count() < d.config.MinBoxesPerColumn || right.count() < d.config.MinBoxesPerColumn {
		return RejectSparseColumn
	}

	// Medians rather than extremes, so a single merged or misplaced
	// box cannot move the column edge.
	separation := right.medianXStart() - left.medianXEnd()
	if separation < -d.config.MedianOverlapTolerance {
		return RejectColumnOverlap
	}

	minYLeft, maxYLeft := left.yExtent()
	minYRight, maxYRight := right.yExtent()
	heightLeft := maxYLeft - minYLeft
	heightRight := maxYRight - minYRight

	minColumnHeight := layoutHeight * d.config.MinColumnHeightRatio
	if heightLeft < minColumnHeight || heightRight < minColumnHeight {
		return RejectShortColumn
	}

	overlap := math.Max(0, math.Min(maxYLeft, maxYRight)-math.Max(minYLeft, minYRight))
	shorter := math.Min(heightLeft, heightRight)
	if shorter == 0 || overlap/shorter < d.config.MinVerticalOverlapRatio {
		return RejectStackedColumns
	}

	return RejectNone
}

// median returns the median of values, averaging the two middle values
// for even counts. The slice is sorted in place.
func median(values []float64) float64 {
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 0 {
		return (values[mid-1] + values[mid]) / 2
	}
	return values[mid]
}
