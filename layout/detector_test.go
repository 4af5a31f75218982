package layout

import (
	"testing"

	"github.com/SEGHAIRII/colscan/model"
)

// Helper to create a text box from corner coordinates
func makeBox(xStart, yStart, xEnd, yEnd float64) model.BBox {
	return model.NewBBox(xStart, yStart, xEnd, yEnd)
}

// Helper to wrap text boxes in a Text-labeled layout
func makeLayout(bounds model.BBox, boxes ...model.BBox) model.Layout {
	return model.Layout{
		Label:     model.LabelText,
		Bounds:    bounds,
		TextBoxes: boxes,
	}
}

func TestDetector_MissingInput(t *testing.T) {
	detector := NewDetector()

	tests := []struct {
		name   string
		layout model.Layout
	}{
		{"empty layout", model.Layout{}},
		{"no text boxes", model.Layout{Bounds: makeBox(0, 0, 1000, 800)}},
		{"no layout box", model.Layout{TextBoxes: []model.BBox{makeBox(0, 0, 100, 50)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if detector.Detect(tt.layout) {
				t.Error("expected negative verdict for missing input")
			}
			if reject := detector.Analyze(tt.layout).Reject; reject != RejectMissingInput {
				t.Errorf("Reject = %v, want %v", reject, RejectMissingInput)
			}
		})
	}
}

func TestDetector_LayoutTooSmall(t *testing.T) {
	detector := NewDetector()
	boxes := []model.BBox{
		makeBox(75, 100, 125, 700),
		makeBox(125, 100, 175, 700),
		makeBox(825, 100, 875, 700),
		makeBox(875, 100, 925, 700),
	}

	tests := []struct {
		name   string
		bounds model.BBox
	}{
		{"below minimum height", makeBox(0, 0, 1000, 250)},
		{"below minimum width", makeBox(0, 0, 150, 800)},
		{"degenerate", makeBox(0, 0, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := makeLayout(tt.bounds, boxes...)
			if detector.Detect(l) {
				t.Error("expected negative verdict for undersized layout")
			}
			if reject := detector.Analyze(l).Reject; reject != RejectLayoutTooSmall {
				t.Errorf("Reject = %v, want %v", reject, RejectLayoutTooSmall)
			}
		})
	}
}

func TestDetector_TwoClusters(t *testing.T) {
	detector := NewDetector()

	// 1000x800 layout with two tight clusters of box centers at
	// 100/150 and 850/900, all boxes tall and fully overlapping
	// vertically. The 700-wide central gap is the gutter.
	l := makeLayout(makeBox(0, 0, 1000, 800),
		makeBox(75, 100, 125, 700),
		makeBox(125, 100, 175, 700),
		makeBox(825, 100, 875, 700),
		makeBox(875, 100, 925, 700),
	)

	if !detector.Detect(l) {
		t.Fatal("expected positive verdict for two tight clusters")
	}

	a := detector.Analyze(l)
	if !a.IsTwoColumn() {
		t.Error("Analyze() verdict disagrees with Detect()")
	}
	if a.Reject != RejectNone {
		t.Errorf("Reject = %v, want %v", a.Reject, RejectNone)
	}
	if a.GutterX() != 500 {
		t.Errorf("GutterX() = %v, want 500", a.GutterX())
	}
	if a.GutterGap != 700 {
		t.Errorf("GutterGap = %v, want 700", a.GutterGap)
	}
	if a.LeftCount() != 2 || a.RightCount() != 2 {
		t.Errorf("split = %d/%d boxes, want 2/2", a.LeftCount(), a.RightCount())
	}
}

func TestDetector_TooFewBoxes(t *testing.T) {
	detector := NewDetector()

	// Same clusters as above but only three boxes in total
	l := makeLayout(makeBox(0, 0, 1000, 800),
		makeBox(75, 100, 125, 700),
		makeBox(125, 100, 175, 700),
		makeBox(825, 100, 875, 700),
	)

	if detector.Detect(l) {
		t.Error("expected negative verdict with fewer boxes than MinBoxes")
	}
	if reject := detector.Analyze(l).Reject; reject != RejectTooFewBoxes {
		t.Errorf("Reject = %v, want %v", reject, RejectTooFewBoxes)
	}
}

func TestDetector_EvenSpread(t *testing.T) {
	detector := NewDetector()

	// Centers spread evenly at 100, 400, 600, 900: no dominant central
	// gap, so no split leaves two populated columns.
	l := makeLayout(makeBox(0, 0, 1000, 800),
		makeBox(75, 100, 125, 700),
		makeBox(375, 100, 425, 700),
		makeBox(575, 100, 625, 700),
		makeBox(875, 100, 925, 700),
	)

	if detector.Detect(l) {
		t.Error("expected negative verdict for evenly spread centers")
	}
	if a := detector.Analyze(l); a.Reject == RejectNone {
		t.Error("expected a rejecting check for evenly spread centers")
	}
}

func TestDetector_NoCentralGutter(t *testing.T) {
	detector := NewDetector()

	// All boxes bunched on the left: every gap midpoint falls outside
	// the central band.
	l := makeLayout(makeBox(0, 0, 1000, 800),
		makeBox(75, 100, 125, 700),
		makeBox(105, 100, 155, 700),
		makeBox(135, 100, 185, 700),
		makeBox(165, 100, 215, 700),
	)

	if detector.Detect(l) {
		t.Error("expected negative verdict without a central gutter")
	}
	if reject := detector.Analyze(l).Reject; reject != RejectNoGutter {
		t.Errorf("Reject = %v, want %v", reject, RejectNoGutter)
	}
}

func TestDetector_ShortColumns(t *testing.T) {
	detector := NewDetector()

	// Valid horizontal split, but each side spans only 100 of the 800
	// layout height, below the 30% floor.
	l := makeLayout(makeBox(0, 0, 1000, 800),
		makeBox(75, 0, 125, 100),
		makeBox(125, 0, 175, 100),
		makeBox(825, 700, 875, 800),
		makeBox(875, 700, 925, 800),
	)

	if detector.Detect(l) {
		t.Error("expected negative verdict for short columns")
	}
	if reject := detector.Analyze(l).Reject; reject != RejectShortColumn {
		t.Errorf("Reject = %v, want %v", reject, RejectShortColumn)
	}
}

func TestDetector_StackedGroups(t *testing.T) {
	detector := NewDetector()

	// Both sides are tall enough but occupy disjoint vertical ranges:
	// left spans y 0..400, right spans y 450..800.
	l := makeLayout(makeBox(0, 0, 1000, 800),
		makeBox(100, 0, 400, 100),
		makeBox(100, 300, 400, 400),
		makeBox(600, 450, 900, 550),
		makeBox(600, 700, 900, 800),
	)

	if detector.Detect(l) {
		t.Error("expected negative verdict for vertically stacked groups")
	}
	if reject := detector.Analyze(l).Reject; reject != RejectStackedColumns {
		t.Errorf("Reject = %v, want %v", reject, RejectStackedColumns)
	}
}

func TestDetector_SpanningTitleExcluded(t *testing.T) {
	detector := NewDetector()

	// A 750-wide title exceeds both spanning thresholds and must not
	// take part in column inference; the remaining boxes still form a
	// clean split.
	l := makeLayout(makeBox(0, 0, 1000, 800),
		makeBox(100, 20, 850, 90),
		makeBox(75, 100, 125, 700),
		makeBox(125, 100, 175, 700),
		makeBox(825, 100, 875, 700),
		makeBox(875, 100, 925, 700),
	)

	if !detector.Detect(l) {
		t.Fatal("expected positive verdict once the title is excluded")
	}

	a := detector.Analyze(l)
	if a.LeftCount()+a.RightCount() != 4 {
		t.Errorf("split covers %d boxes, want 4 (title excluded)",
			a.LeftCount()+a.RightCount())
	}
}

func TestDetector_AbsoluteSpanningInWideLayout(t *testing.T) {
	detector := NewDetector()

	// In a 2000-wide layout a 750-wide box passes the ratio test
	// (0.375 < 0.7) but still exceeds the absolute threshold, so it is
	// excluded all the same.
	l := makeLayout(makeBox(0, 0, 2000, 800),
		makeBox(600, 20, 1350, 90),
		makeBox(550, 100, 650, 700),
		makeBox(600, 100, 700, 700),
		makeBox(1300, 100, 1400, 700),
		makeBox(1350, 100, 1450, 700),
	)

	if !detector.Detect(l) {
		t.Fatal("expected positive verdict in wide layout")
	}
	if a := detector.Analyze(l); a.LeftCount()+a.RightCount() != 4 {
		t.Errorf("split covers %d boxes, want 4 (wide box excluded)",
			a.LeftCount()+a.RightCount())
	}
}

func TestDetector_ColumnOverlapRejected(t *testing.T) {
	detector := NewDetector()

	// The right group's median left edge sits 70 inside the left
	// group's median right edge, past the 20 tolerance.
	l := makeLayout(makeBox(0, 0, 1000, 800),
		makeBox(100, 100, 520, 300),
		makeBox(140, 350, 540, 550),
		makeBox(450, 100, 800, 300),
		makeBox(470, 350, 820, 550),
	)

	if detector.Detect(l) {
		t.Error("expected negative verdict for overlapping columns")
	}
	if reject := detector.Analyze(l).Reject; reject != RejectColumnOverlap {
		t.Errorf("Reject = %v, want %v", reject, RejectColumnOverlap)
	}
}

func TestDetector_SlightOverlapTolerated(t *testing.T) {
	detector := NewDetector()

	// Median separation of -15 stays within the 20-pixel tolerance.
	l := makeLayout(makeBox(0, 0, 1000, 800),
		makeBox(100, 100, 520, 400),
		makeBox(140, 420, 540, 720),
		makeBox(505, 100, 900, 400),
		makeBox(525, 420, 920, 720),
	)

	if !detector.Detect(l) {
		t.Error("expected positive verdict for slight median overlap")
	}
}

func TestDetector_GutterTieBreak(t *testing.T) {
	detector := NewDetector()

	// Centers at 300, 400, 500, 600 give three candidates with equal
	// 100-wide gaps; the first in ascending order (midpoint 350) wins.
	// Its split leaves one box on the left, so the verdict is negative,
	// but the chosen gutter is still reported.
	l := makeLayout(makeBox(0, 0, 1000, 800),
		makeBox(275, 100, 325, 700),
		makeBox(375, 100, 425, 700),
		makeBox(475, 100, 525, 700),
		makeBox(575, 100, 625, 700),
	)

	a := detector.Analyze(l)
	if a.TwoColumn {
		t.Error("expected negative verdict for a one-box column")
	}
	if a.Reject != RejectSparseColumn {
		t.Errorf("Reject = %v, want %v", a.Reject, RejectSparseColumn)
	}
	if a.Gutter != 350 {
		t.Errorf("Gutter = %v, want 350 (first maximal candidate)", a.Gutter)
	}
	if a.LeftCount() != 1 || a.RightCount() != 3 {
		t.Errorf("split = %d/%d boxes, want 1/3", a.LeftCount(), a.RightCount())
	}
}

func TestDetector_SplitConservesBoxes(t *testing.T) {
	detector := NewDetector()

	layouts := []model.Layout{
		// Positive verdict
		makeLayout(makeBox(0, 0, 1000, 800),
			makeBox(75, 100, 125, 700),
			makeBox(125, 100, 175, 700),
			makeBox(825, 100, 875, 700),
			makeBox(875, 100, 925, 700),
		),
		// Negative verdict after the split was made
		makeLayout(makeBox(0, 0, 1000, 800),
			makeBox(275, 100, 325, 700),
			makeBox(375, 100, 425, 700),
			makeBox(475, 100, 525, 700),
			makeBox(575, 100, 625, 700),
		),
	}

	for i, l := range layouts {
		a := detector.Analyze(l)
		if a.Gutter == 0 {
			t.Fatalf("layout %d: expected a gutter to be found", i)
		}
		if got := a.LeftCount() + a.RightCount(); got != len(l.TextBoxes) {
			t.Errorf("layout %d: split covers %d boxes, want %d", i, got, len(l.TextBoxes))
		}
	}
}

func TestDetector_Idempotent(t *testing.T) {
	detector := NewDetector()
	l := makeLayout(makeBox(0, 0, 1000, 800),
		makeBox(75, 100, 125, 700),
		makeBox(125, 100, 175, 700),
		makeBox(825, 100, 875, 700),
		makeBox(875, 100, 925, 700),
	)

	first := detector.Detect(l)
	for i := 0; i < 5; i++ {
		if detector.Detect(l) != first {
			t.Fatal("verdict changed across repeated calls")
		}
	}

	a1, a2 := detector.Analyze(l), detector.Analyze(l)
	if a1.TwoColumn != a2.TwoColumn || a1.Gutter != a2.Gutter || a1.Reject != a2.Reject {
		t.Error("analysis changed across repeated calls")
	}
}

func TestDetector_InputNotMutated(t *testing.T) {
	detector := NewDetector()

	boxes := []model.BBox{
		makeBox(825, 100, 875, 700),
		makeBox(75, 100, 125, 700),
		makeBox(875, 100, 925, 700),
		makeBox(125, 100, 175, 700),
	}
	l := makeLayout(makeBox(0, 0, 1000, 800), boxes...)

	original := make([]model.BBox, len(boxes))
	copy(original, l.TextBoxes)

	detector.Detect(l)
	detector.Analyze(l)

	for i := range original {
		if l.TextBoxes[i] != original[i] {
			t.Fatalf("TextBoxes[%d] changed from %+v to %+v", i, original[i], l.TextBoxes[i])
		}
	}
}

func TestDetector_CustomConfig(t *testing.T) {
	// The two-cluster layout that passes under defaults
	l := makeLayout(makeBox(0, 0, 1000, 800),
		makeBox(75, 100, 125, 700),
		makeBox(125, 100, 175, 700),
		makeBox(825, 100, 875, 700),
		makeBox(875, 100, 925, 700),
	)

	tests := []struct {
		name   string
		adjust func(*DetectorConfig)
		want   bool
	}{
		{"defaults", func(*DetectorConfig) {}, true},
		{"more boxes required", func(c *DetectorConfig) { c.MinBoxes = 6 }, false},
		{"more boxes per column", func(c *DetectorConfig) { c.MinBoxesPerColumn = 3 }, false},
		{"taller layout required", func(c *DetectorConfig) { c.MinLayoutHeight = 1000 }, false},
		{"narrow search band", func(c *DetectorConfig) { c.GutterSearchLow = 0.45; c.GutterSearchHigh = 0.55 }, true},
		{"everything is spanning", func(c *DetectorConfig) { c.SpanningWidthAbsolute = 40 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultDetectorConfig()
			tt.adjust(&config)
			detector := NewDetectorWithConfig(config)

			if got := detector.Detect(l); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultDetectorConfig(t *testing.T) {
	config := DefaultDetectorConfig()

	if config.MinLayoutHeight != 300 {
		t.Errorf("MinLayoutHeight = %v, want 300", config.MinLayoutHeight)
	}
	if config.SpanningWidthRatio != 0.7 {
		t.Errorf("SpanningWidthRatio = %v, want 0.7", config.SpanningWidthRatio)
	}
	if config.MinBoxes != 4 {
		t.Errorf("MinBoxes = %v, want 4", config.MinBoxes)
	}
	if config.GutterSearchLow != 0.25 || config.GutterSearchHigh != 0.75 {
		t.Errorf("gutter band = (%v, %v), want (0.25, 0.75)",
			config.GutterSearchLow, config.GutterSearchHigh)
	}
}

func TestAnalysis_NilReceiver(t *testing.T) {
	var a *Analysis

	if a.IsTwoColumn() {
		t.Error("nil analysis should not be two-column")
	}
	if a.GutterX() != 0 {
		t.Error("nil analysis GutterX should be 0")
	}
	if a.LeftCount() != 0 || a.RightCount() != 0 {
		t.Error("nil analysis counts should be 0")
	}
}

func TestDetector_NewspaperPage(t *testing.T) {
	detector := NewDetector()

	// A realistic scanned newspaper region: 940x1300 pixels, ten rows
	// of text boxes per column with ragged edges, plus a spanning
	// headline at the top.
	boxes := []model.BBox{makeBox(140, 130, 880, 210)}
	for row := 0; row < 10; row++ {
		y := 260 + float64(row)*100
		boxes = append(boxes,
			makeBox(120, y, 490+float64(row%3)*8, y+60),
			makeBox(540, y, 900-float64(row%2)*10, y+60),
		)
	}
	l := makeLayout(makeBox(100, 100, 1040, 1400), boxes...)

	if !detector.Detect(l) {
		t.Fatal("expected positive verdict for newspaper-style region")
	}

	a := detector.Analyze(l)
	if a.LeftCount() != 10 || a.RightCount() != 10 {
		t.Errorf("split = %d/%d boxes, want 10/10", a.LeftCount(), a.RightCount())
	}
}

// Benchmark classification of a typical two-column region
func BenchmarkDetector_TwoColumn(b *testing.B) {
	detector := NewDetector()

	var boxes []model.BBox
	for row := 0; row < 50; row++ {
		y := 200 + float64(row)*24
		boxes = append(boxes,
			makeBox(120, y, 490, y+18),
			makeBox(540, y, 900, y+18),
		)
	}
	l := makeLayout(makeBox(100, 100, 1040, 1500), boxes...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		detector.Detect(l)
	}
}

func BenchmarkDetector_SingleColumn(b *testing.B) {
	detector := NewDetector()

	var boxes []model.BBox
	for row := 0; row < 100; row++ {
		y := 200 + float64(row)*12
		boxes = append(boxes, makeBox(120, y, 620, y+10))
	}
	l := makeLayout(makeBox(100, 100, 840, 1500), boxes...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		detector.Detect(l)
	}
}
