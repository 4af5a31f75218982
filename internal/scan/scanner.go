// Package scan walks result directories and classifies their layouts.
package scan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/SEGHAIRII/colscan/layout"
	"github.com/SEGHAIRII/colscan/model"
	"github.com/SEGHAIRII/colscan/pages"
	"github.com/SEGHAIRII/colscan/render"
)

// Config controls a batch scan.
type Config struct {
	// ResultDir is the directory holding per-year result files.
	// Default: result_json.
	ResultDir string

	// OutputDir receives rendered pages when Visualize is set.
	// Default: visualizations.
	OutputDir string

	// MinYear excludes year directories sorting at or below it.
	// Default: 1964.
	MinYear string

	// Label selects which layout regions are classified.
	// Default: Text.
	Label string

	// Visualize renders every page with at least one two-column hit.
	Visualize bool
}

// DefaultConfig returns the scan defaults.
func DefaultConfig() Config {
	return Config{
		ResultDir: "result_json",
		OutputDir: "visualizations",
		MinYear:   "1964",
		Label:     model.LabelText,
	}
}

// Stats counts what a scan visited and found.
type Stats struct {
	Years     int
	Files     int
	Pages     int
	Layouts   int
	TwoColumn int
	Rendered  int
}

// Scanner walks result directories and classifies their layouts.
type Scanner struct {
	config   Config
	detector *layout.Detector
	renderer *render.Renderer
	log      *slog.Logger
}

// NewScanner creates a scanner. A nil detector selects the default
// configuration; a nil logger selects slog.Default.
func NewScanner(config Config, detector *layout.Detector, log *slog.Logger) *Scanner {
	if detector == nil {
		detector = layout.NewDetector()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Scanner{
		config:   config,
		detector: detector,
		renderer: render.NewRenderer(),
		log:      log,
	}
}

// Run walks the result directory and classifies every layout whose
// label matches the configuration. Year directories are visited newest
// first. Unreadable result files are logged and skipped; the context is
// checked between files.
func (s *Scanner) Run(ctx context.Context) (*Stats, error) {
	years, err := os.ReadDir(s.config.ResultDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read result directory: %w", err)
	}

	sort.Slice(years, func(i, j int) bool { return years[i].Name() > years[j].Name() })

	stats := &Stats{}
	for _, year := range years {
		if !year.IsDir() || year.Name() <= s.config.MinYear {
			continue
		}

		s.log.Info("processing year", "year", year.Name())
		stats.Years++

		if err := s.scanYear(ctx, year.Name(), stats); err != nil {
			return stats, err
		}
	}

	return stats, nil
}

func (s *Scanner) scanYear(ctx context.Context, year string, stats *Stats) error {
	dir := filepath.Join(s.config.ResultDir, year)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read year directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.scanFile(year, entry.Name(), stats); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scanner) scanFile(year, name string, stats *Stats) error {
	path := filepath.Join(s.config.ResultDir, year, name)
	pgs, err := pages.ReadFile(path)
	if err != nil {
		s.log.Error("skipping unreadable result file", "path", path, "error", err)
		return nil
	}

	stats.Files++

	for _, page := range pgs {
		stats.Pages++
		verdicts := make([]bool, len(page.Layouts))
		var hits []int

		for i, l := range page.Layouts {
			if l.Label != s.config.Label {
				continue
			}
			stats.Layouts++
			if s.detector.Detect(l) {
				verdicts[i] = true
				hits = append(hits, i)
			}
		}

		if len(hits) == 0 {
			continue
		}

		stats.TwoColumn += len(hits)
		s.log.Info("two-column layout detected",
			"year", year, "file", name, "page", page.Index, "layouts", hits)

		if s.config.Visualize {
			if err := s.renderPage(year, name, page, verdicts); err != nil {
				return err
			}
			stats.Rendered++
		}
	}

	return nil
}

func (s *Scanner) renderPage(year, name string, page model.Page, verdicts []bool) error {
	img, err := s.renderer.RenderPage(page, verdicts)
	if err != nil {
		return fmt.Errorf("failed to render %s page %d: %w", name, page.Index, err)
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	out := filepath.Join(s.config.OutputDir, year, fmt.Sprintf("%s_page_%d.png", base, page.Index))
	if err := render.WritePNG(out, img); err != nil {
		return err
	}

	s.log.Info("saved visualization", "path", out)
	return nil
}
