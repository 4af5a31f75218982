package layout

import "github.com/SEGHAIRII/colscan/model"

// Reject identifies the check that settled a negative verdict
type Reject int

const (
	// RejectNone means no check rejected the layout
	RejectNone Reject = iota

	// RejectMissingInput means the layout box or text boxes were absent
	RejectMissingInput

	// RejectLayoutTooSmall means the layout is below the minimum width
	// or height
	RejectLayoutTooSmall

	// RejectTooFewBoxes means too few boxes remained after removing
	// spanning content
	RejectTooFewBoxes

	// RejectNoGutter means no qualifying gap was found in the central
	// band
	RejectNoGutter

	// RejectSparseColumn means one side of the split held too few boxes
	RejectSparseColumn

	// RejectColumnOverlap means the column medians overlap horizontally
	// beyond the tolerance
	RejectColumnOverlap

	// RejectShortColumn means one column spans too little of the layout
	// height
	RejectShortColumn

	// RejectStackedColumns means the groups do not share enough
	// vertical range to sit side by side
	RejectStackedColumns
)

func (r Reject) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectMissingInput:
		return "missing input"
	case RejectLayoutTooSmall:
		return "layout too small"
	case RejectTooFewBoxes:
		return "too few boxes"
	case RejectNoGutter:
		return "no gutter"
	case RejectSparseColumn:
		return "sparse column"
	case RejectColumnOverlap:
		return "column overlap"
	case RejectShortColumn:
		return "short column"
	case RejectStackedColumns:
		return "stacked columns"
	default:
		return "unknown"
	}
}

// Analysis is the full outcome of classifying one layout
type Analysis struct {
	// TwoColumn is the verdict
	TwoColumn bool

	// Reject names the check that produced a negative verdict;
	// RejectNone when the verdict is positive
	Reject Reject

	// Gutter is the X coordinate of the chosen column divider. Set
	// once a gutter was found, even when a later check rejects the
	// layout.
	Gutter float64

	// GutterGap is the distance between the box centers on either side
	// of the gutter
	GutterGap float64

	// Left and Right are the boxes assigned to each side of the gutter
	Left  []model.BBox
	Right []model.BBox

	// Config is the configuration used for this classification
	Config DetectorConfig
}

// IsTwoColumn returns the verdict, tolerating a nil analysis
func (a *Analysis) IsTwoColumn() bool {
	if a == nil {
		return false
	}
	return a.TwoColumn
}

// GutterX returns the chosen divider position, or 0 when no gutter was
// found
func (a *Analysis) GutterX() float64 {
	if a == nil {
		return 0
	}
	return a.Gutter
}

// LeftCount returns the number of boxes assigned to the left column
func (a *Analysis) LeftCount() int {
	if a == nil {
		return 0
	}
	return len(a.Left)
}

// RightCount returns the number of boxes assigned to the right column
func (a *Analysis) RightCount() int {
	if a == nil {
		return 0
	}
	return len(a.Right)
}
