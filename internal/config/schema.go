package config

import (
	"github.com/SEGHAIRII/colscan/internal/scan"
	"github.com/SEGHAIRII/colscan/layout"
)

// Settings holds colscan configuration.
// Loaded from colscan.yaml, COLSCAN_* environment variables, or flags.
type Settings struct {
	Scan     ScanSettings     `mapstructure:"scan"`
	Detector DetectorSettings `mapstructure:"detector"`
}

// ScanSettings configures the batch scan.
type ScanSettings struct {
	ResultDir string `mapstructure:"result_dir"` // Directory of per-year result files (default: result_json)
	OutputDir string `mapstructure:"output_dir"` // Directory for rendered pages (default: visualizations)
	MinYear   string `mapstructure:"min_year"`   // Years sorting at or below this are skipped (default: 1964)
	Label     string `mapstructure:"label"`      // Layout label to classify (default: Text)
	Visualize bool   `mapstructure:"visualize"`  // Render pages with two-column hits
}

// DetectorSettings mirrors the classifier thresholds of
// [layout.DetectorConfig].
type DetectorSettings struct {
	MinLayoutHeight         float64 `mapstructure:"min_layout_height"`
	MinLayoutWidth          float64 `mapstructure:"min_layout_width"`
	SpanningWidthRatio      float64 `mapstructure:"spanning_width_ratio"`
	SpanningWidthAbsolute   float64 `mapstructure:"spanning_width_absolute"`
	MinBoxes                int     `mapstructure:"min_boxes"`
	MinBoxesPerColumn       int     `mapstructure:"min_boxes_per_column"`
	GutterSearchLow         float64 `mapstructure:"gutter_search_low"`
	GutterSearchHigh        float64 `mapstructure:"gutter_search_high"`
	MedianOverlapTolerance  float64 `mapstructure:"median_overlap_tolerance"`
	MinColumnHeightRatio    float64 `mapstructure:"min_column_height_ratio"`
	MinVerticalOverlapRatio float64 `mapstructure:"min_vertical_overlap_ratio"`
}

// DefaultSettings returns settings matching the library defaults.
func DefaultSettings() *Settings {
	sc := scan.DefaultConfig()
	det := layout.DefaultDetectorConfig()

	return &Settings{
		Scan: ScanSettings{
			ResultDir: sc.ResultDir,
			OutputDir: sc.OutputDir,
			MinYear:   sc.MinYear,
			Label:     sc.Label,
			Visualize: sc.Visualize,
		},
		Detector: DetectorSettings{
			MinLayoutHeight:         det.MinLayoutHeight,
			MinLayoutWidth:          det.MinLayoutWidth,
			SpanningWidthRatio:      det.SpanningWidthRatio,
			SpanningWidthAbsolute:   det.SpanningWidthAbsolute,
			MinBoxes:                det.MinBoxes,
			MinBoxesPerColumn:       det.MinBoxesPerColumn,
			GutterSearchLow:         det.GutterSearchLow,
			GutterSearchHigh:        det.GutterSearchHigh,
			MedianOverlapTolerance:  det.MedianOverlapTolerance,
			MinColumnHeightRatio:    det.MinColumnHeightRatio,
			MinVerticalOverlapRatio: det.MinVerticalOverlapRatio,
		},
	}
}

// ScanConfig materializes the scan engine's configuration.
func (s *Settings) ScanConfig() scan.Config {
	return scan.Config{
		ResultDir: s.Scan.ResultDir,
		OutputDir: s.Scan.OutputDir,
		MinYear:   s.Scan.MinYear,
		Label:     s.Scan.Label,
		Visualize: s.Scan.Visualize,
	}
}

// DetectorConfig materializes the classifier's configuration.
func (s *Settings) DetectorConfig() layout.DetectorConfig {
	return layout.DetectorConfig{
		MinLayoutHeight:         s.Detector.MinLayoutHeight,
		MinLayoutWidth:          s.Detector.MinLayoutWidth,
		SpanningWidthRatio:      s.Detector.SpanningWidthRatio,
		SpanningWidthAbsolute:   s.Detector.SpanningWidthAbsolute,
		MinBoxes:                s.Detector.MinBoxes,
		MinBoxesPerColumn:       s.Detector.MinBoxesPerColumn,
		GutterSearchLow:         s.Detector.GutterSearchLow,
		GutterSearchHigh:        s.Detector.GutterSearchHigh,
		MedianOverlapTolerance:  s.Detector.MedianOverlapTolerance,
		MinColumnHeightRatio:    s.Detector.MinColumnHeightRatio,
		MinVerticalOverlapRatio: s.Detector.MinVerticalOverlapRatio,
	}
}
