package layout

import (
	"sort"

	"github.com/SEGHAIRII/colscan/model"
)

// DetectorConfig holds configuration for two-column detection
type DetectorConfig struct {
	// MinLayoutHeight is the minimum layout height for two-column
	// structure to be considered at all
	// Default: 300 pixels
	MinLayoutHeight float64

	// MinLayoutWidth is the minimum layout width to consider
	// Default: 200 pixels
	MinLayoutWidth float64

	// SpanningWidthRatio marks a box as cross-column content (a title
	// or caption) when its width exceeds this fraction of the layout
	// width
	// Default: 0.7
	SpanningWidthRatio float64

	// SpanningWidthAbsolute marks a box as cross-column content when
	// its width exceeds this many pixels, regardless of the layout
	// width. Catches wide titles inside very wide layouts where the
	// ratio test alone is too permissive.
	// Default: 700 pixels
	SpanningWidthAbsolute float64

	// MinBoxes is the minimum number of non-spanning boxes required
	// before column structure is inferred
	// Default: 4
	MinBoxes int

	// MinBoxesPerColumn is the minimum number of boxes each detected
	// column must hold
	// Default: 2
	MinBoxesPerColumn int

	// GutterSearchLow and GutterSearchHigh bound the central band of
	// the layout (as fractions of its width) where the gutter may fall.
	// Gaps whose midpoint lies outside the band are ignored.
	// Defaults: 0.25 and 0.75
	GutterSearchLow  float64
	GutterSearchHigh float64

	// MedianOverlapTolerance is the largest horizontal overlap allowed
	// between the left column's median right edge and the right
	// column's median left edge
	// Default: 20 pixels
	MedianOverlapTolerance float64

	// MinColumnHeightRatio requires each column to span at least this
	// fraction of the layout height
	// Default: 0.3
	MinColumnHeightRatio float64

	// MinVerticalOverlapRatio requires the columns' shared vertical
	// range to be at least this fraction of the shorter column's
	// height, so the groups sit side by side rather than stacked
	// Default: 0.4
	MinVerticalOverlapRatio float64
}

// DefaultDetectorConfig returns sensible default configuration
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		MinLayoutHeight:         300.0,
		MinLayoutWidth:          200.0,
		SpanningWidthRatio:      0.7,
		SpanningWidthAbsolute:   700.0,
		MinBoxes:                4,
		MinBoxesPerColumn:       2,
		GutterSearchLow:         0.25,
		GutterSearchHigh:        0.75,
		MedianOverlapTolerance:  20.0,
		MinColumnHeightRatio:    0.3,
		MinVerticalOverlapRatio: 0.4,
	}
}

// Detector classifies page regions as two-column or not
type Detector struct {
	config DetectorConfig
}

// NewDetector creates a detector with default configuration
func NewDetector() *Detector {
	return &Detector{
		config: DefaultDetectorConfig(),
	}
}

// NewDetectorWithConfig creates a detector with custom configuration
func NewDetectorWithConfig(config DetectorConfig) *Detector {
	return &Detector{
		config: config,
	}
}

// Config returns the configuration the detector runs with
func (d *Detector) Config() DetectorConfig {
	return d.config
}

// Detect reports whether the layout's text boxes form a two-column
// structure. Missing input, undersized layouts, and every failed
// structural check all yield false; there is no error case.
func (d *Detector) Detect(l model.Layout) bool {
	return d.Analyze(l).TwoColumn
}

// Analyze classifies the layout and returns the verdict together with
// diagnostics: the gutter position, the left/right box groups, and the
// check that rejected the layout. Callers wanting only the verdict
// should use Detect; the diagnostic fields are for debugging and
// visualization and are not part of the classification contract.
func (d *Detector) Analyze(l model.Layout) *Analysis {
	a := &Analysis{Config: d.config}

	if l.Bounds.IsZero() || len(l.TextBoxes) == 0 {
		a.Reject = RejectMissingInput
		return a
	}

	layoutWidth := l.Bounds.Width()
	layoutHeight := l.Bounds.Height()
	if layoutHeight < d.config.MinLayoutHeight || layoutWidth < d.config.MinLayoutWidth {
		a.Reject = RejectLayoutTooSmall
		return a
	}

	body := d.filterSpanning(l.TextBoxes, layoutWidth)
	if len(body) < d.config.MinBoxes {
		a.Reject = RejectTooFewBoxes
		return a
	}

	sorted := sortByCenter(body)

	gutter, ok := d.findGutter(sorted, l.Bounds.XStart, layoutWidth)
	if !ok {
		a.Reject = RejectNoGutter
		return a
	}
	a.Gutter = gutter.midpoint
	a.GutterGap = gutter.gap

	left, right := splitAt(sorted, gutter.split)
	a.Left = left.boxes
	a.Right = right.boxes

	if reject := d.validateColumns(left, right, layoutHeight); reject != RejectNone {
		a.Reject = reject
		return a
	}

	a.TwoColumn = true
	return a
}

// filterSpanning removes boxes wide enough to cross both columns
func (d *Detector) filterSpanning(boxes []model.BBox, layoutWidth float64) []model.BBox {
	var body []model.BBox
	for _, box := range boxes {
		if !d.isSpanning(box, layoutWidth) {
			body = append(body, box)
		}
	}
	return body
}

// isSpanning reports whether a box likely spans the layout width, such
// as a title. A zero-width layout marks nothing as spanning.
func (d *Detector) isSpanning(box model.BBox, layoutWidth float64) bool {
	if layoutWidth == 0 {
		return false
	}
	width := box.Width()
	if width/layoutWidth > d.config.SpanningWidthRatio {
		return true
	}
	return width > d.config.SpanningWidthAbsolute
}

// sortByCenter pairs each box with its horizontal center and sorts
// ascending by center. The sort is stable so boxes with equal centers
// keep their input order, which fixes where a split between them lands.
func sortByCenter(boxes []model.BBox) []centeredBox {
	sorted := make([]centeredBox, len(boxes))
	for i, box := range boxes {
		sorted[i] = centeredBox{cx: box.CenterX(), box: box}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].cx < sorted[j].cx
	})
	return sorted
}
