// Package config loads colscan settings from files, environment
// variables and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Manager handles loading configuration.
type Manager struct {
	settings *Settings
}

// NewManager creates a config manager and loads the settings. cfgFile
// names an explicit config file; when empty, colscan.yaml is searched
// in the working directory and $HOME/.colscan.
func NewManager(cfgFile string) (*Manager, error) {
	m := &Manager{}

	if err := m.initViper(cfgFile); err != nil {
		return nil, err
	}

	settings, err := m.load()
	if err != nil {
		return nil, err
	}
	m.settings = settings

	return m, nil
}

// initViper sets up viper with defaults, env overrides and the config
// file.
func (m *Manager) initViper(cfgFile string) error {
	defaults := DefaultSettings()
	viper.SetDefault("scan.result_dir", defaults.Scan.ResultDir)
	viper.SetDefault("scan.output_dir", defaults.Scan.OutputDir)
	viper.SetDefault("scan.min_year", defaults.Scan.MinYear)
	viper.SetDefault("scan.label", defaults.Scan.Label)
	viper.SetDefault("scan.visualize", defaults.Scan.Visualize)

	viper.SetDefault("detector.min_layout_height", defaults.Detector.MinLayoutHeight)
	viper.SetDefault("detector.min_layout_width", defaults.Detector.MinLayoutWidth)
	viper.SetDefault("detector.spanning_width_ratio", defaults.Detector.SpanningWidthRatio)
	viper.SetDefault("detector.spanning_width_absolute", defaults.Detector.SpanningWidthAbsolute)
	viper.SetDefault("detector.min_boxes", defaults.Detector.MinBoxes)
	viper.SetDefault("detector.min_boxes_per_column", defaults.Detector.MinBoxesPerColumn)
	viper.SetDefault("detector.gutter_search_low", defaults.Detector.GutterSearchLow)
	viper.SetDefault("detector.gutter_search_high", defaults.Detector.GutterSearchHigh)
	viper.SetDefault("detector.median_overlap_tolerance", defaults.Detector.MedianOverlapTolerance)
	viper.SetDefault("detector.min_column_height_ratio", defaults.Detector.MinColumnHeightRatio)
	viper.SetDefault("detector.min_vertical_overlap_ratio", defaults.Detector.MinVerticalOverlapRatio)

	// Environment variables with COLSCAN_ prefix, e.g.
	// COLSCAN_SCAN_MIN_YEAR overrides scan.min_year.
	viper.SetEnvPrefix("COLSCAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("colscan")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.colscan")
	}

	// The config file is optional unless named explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// load parses the current viper state into a Settings struct.
func (m *Manager) load() (*Settings, error) {
	var settings Settings
	if err := viper.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return &settings, nil
}

// Get returns the loaded settings.
func (m *Manager) Get() *Settings {
	return m.settings
}
