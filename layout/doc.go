// Package layout decides whether a segmented page region is organized
// as a two-column layout, using only the geometry of its text boxes.
//
// # Detection
//
// The [Detector] is the entry point. It classifies one [model.Layout]
// at a time:
//
//	det := layout.NewDetector()
//	if det.Detect(l) {
//	    // l is a two-column region
//	}
//
// Detection runs a fixed sequence of checks, any of which can settle
// the verdict negatively:
//
//  1. The layout box must be present and at least the configured
//     minimum size.
//  2. Boxes wide enough to span both columns (titles, captions) are
//     removed; enough boxes must remain.
//  3. The largest horizontal gap between sorted box centers inside the
//     central band of the layout becomes the gutter candidate.
//  4. Boxes are split into a left and a right group at that gap.
//  5. The groups must each be populated, horizontally separated
//     (compared through medians), tall enough, and vertically
//     side-by-side rather than stacked.
//
// [Detector.Analyze] returns the same verdict together with the chosen
// gutter position, the split groups, and the check that rejected the
// layout. The boolean from Detect is the contract; Analyze is for
// debugging and visualization only.
//
// # Configuration
//
// All thresholds live in [DetectorConfig]; zero-config callers get
// [DefaultDetectorConfig]:
//
//	cfg := layout.DefaultDetectorConfig()
//	cfg.MinBoxes = 6
//	det := layout.NewDetectorWithConfig(cfg)
//
// # Row metrics
//
// [SameRow] and [MinRowGap] answer the related row-level questions:
// whether two boxes sit side by side on one text row, and how narrow
// the gaps between such boxes get. They are useful when estimating
// gutter widths across a page.
//
// The package performs no I/O and keeps no state between calls; a
// Detector may be shared freely across goroutines.
package layout
