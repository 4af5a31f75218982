package main

import (
	"github.com/spf13/cobra"

	"github.com/SEGHAIRII/colscan/internal/config"
	"github.com/SEGHAIRII/colscan/internal/scan"
	"github.com/SEGHAIRII/colscan/layout"
)

var (
	scanResultDir string
	scanOutputDir string
	scanMinYear   string
	scanLabel     string
	scanVisualize bool

	scanMinBoxes      int
	scanSpanningRatio float64
	scanSpanningWidth float64
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Classify result files year by year",
	Long: `Classify the layout regions of scanned pages stored as
layout-analysis result files.

Result files live under <result-dir>/<year>/<file>.json. Years sorting
after --min-year are processed newest first; every layout carrying the
configured label is classified and each two-column hit is logged. With
--visualize, pages containing at least one hit are rendered to
<output-dir>/<year>/<file>_page_<index>.png.

Examples:
  colscan scan                                 # scan ./result_json
  colscan scan --result-dir /data/result_json  # scan another tree
  colscan scan --visualize                     # render annotated pages
  colscan scan --min-year 1900                 # widen the year range`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		manager, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		settings := manager.Get()

		// Flags override file and environment settings.
		flags := cmd.Flags()
		if flags.Changed("result-dir") {
			settings.Scan.ResultDir = scanResultDir
		}
		if flags.Changed("output-dir") {
			settings.Scan.OutputDir = scanOutputDir
		}
		if flags.Changed("min-year") {
			settings.Scan.MinYear = scanMinYear
		}
		if flags.Changed("label") {
			settings.Scan.Label = scanLabel
		}
		if flags.Changed("visualize") {
			settings.Scan.Visualize = scanVisualize
		}
		if flags.Changed("min-boxes") {
			settings.Detector.MinBoxes = scanMinBoxes
		}
		if flags.Changed("spanning-ratio") {
			settings.Detector.SpanningWidthRatio = scanSpanningRatio
		}
		if flags.Changed("spanning-width") {
			settings.Detector.SpanningWidthAbsolute = scanSpanningWidth
		}

		detector := layout.NewDetectorWithConfig(settings.DetectorConfig())
		scanner := scan.NewScanner(settings.ScanConfig(), detector, logger)

		stats, err := scanner.Run(cmd.Context())
		if err != nil {
			return err
		}

		logger.Info("scan complete",
			"years", stats.Years,
			"files", stats.Files,
			"pages", stats.Pages,
			"layouts", stats.Layouts,
			"two_column", stats.TwoColumn,
			"rendered", stats.Rendered)

		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanResultDir, "result-dir", "result_json", "Directory of per-year result files")
	scanCmd.Flags().StringVar(&scanOutputDir, "output-dir", "visualizations", "Directory for rendered pages")
	scanCmd.Flags().StringVar(&scanMinYear, "min-year", "1964", "Skip year directories sorting at or below this")
	scanCmd.Flags().StringVar(&scanLabel, "label", "Text", "Layout label to classify")
	scanCmd.Flags().BoolVar(&scanVisualize, "visualize", false, "Render pages with two-column hits")

	scanCmd.Flags().IntVar(&scanMinBoxes, "min-boxes", 4, "Minimum text boxes a layout needs after filtering")
	scanCmd.Flags().Float64Var(&scanSpanningRatio, "spanning-ratio", 0.7, "Width ratio above which a box spans the layout")
	scanCmd.Flags().Float64Var(&scanSpanningWidth, "spanning-width", 700, "Absolute width above which a box spans the layout")

	rootCmd.AddCommand(scanCmd)
}
