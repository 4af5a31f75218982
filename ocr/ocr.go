//go:build ocr

// Package ocr recognizes text on scanned page images.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
//
// Recognition returns positioned hOCR output, so results feed layout
// classification directly.
package ocr

import (
	"fmt"
	"os"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/SEGHAIRII/colscan/hocr"
)

// PageSegMode controls how Tesseract divides the page before
// recognition.
type PageSegMode = gosseract.PageSegMode

// Page segmentation modes.
const (
	PSM_OSD_ONLY               = gosseract.PSM_OSD_ONLY
	PSM_AUTO_OSD               = gosseract.PSM_AUTO_OSD
	PSM_AUTO_ONLY              = gosseract.PSM_AUTO_ONLY
	PSM_AUTO                   = gosseract.PSM_AUTO
	PSM_SINGLE_COLUMN          = gosseract.PSM_SINGLE_COLUMN
	PSM_SINGLE_BLOCK_VERT_TEXT = gosseract.PSM_SINGLE_BLOCK_VERT_TEXT
	PSM_SINGLE_BLOCK           = gosseract.PSM_SINGLE_BLOCK
	PSM_SINGLE_LINE            = gosseract.PSM_SINGLE_LINE
	PSM_SINGLE_WORD            = gosseract.PSM_SINGLE_WORD
	PSM_CIRCLE_WORD            = gosseract.PSM_CIRCLE_WORD
	PSM_SINGLE_CHAR            = gosseract.PSM_SINGLE_CHAR
	PSM_SPARSE_TEXT            = gosseract.PSM_SPARSE_TEXT
	PSM_SPARSE_TEXT_OSD        = gosseract.PSM_SPARSE_TEXT_OSD
	PSM_RAW_LINE               = gosseract.PSM_RAW_LINE
)

// Config controls the recognition engine.
type Config struct {
	// Languages are the Tesseract language codes to recognize together
	// (e.g. "deu", "eng"). Default: eng.
	Languages []string

	// TessdataPrefix overrides the directory Tesseract loads language
	// data from. Empty uses the system default.
	TessdataPrefix string

	// PageSegMode is the page segmentation mode. Default: PSM_AUTO.
	PageSegMode PageSegMode
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		Languages:   []string{"eng"},
		PageSegMode: PSM_AUTO,
	}
}

// Engine performs OCR through a Tesseract client.
type Engine struct {
	client *gosseract.Client
	config Config
}

// NewEngine creates an engine with default configuration.
// The engine should be closed when no longer needed to release resources.
func NewEngine() (*Engine, error) {
	return NewEngineWithConfig(DefaultConfig())
}

// NewEngineWithConfig creates an engine with the given configuration.
func NewEngineWithConfig(config Config) (*Engine, error) {
	client := gosseract.NewClient()

	if config.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(config.TessdataPrefix); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set tessdata prefix: %w", err)
		}
	}
	if len(config.Languages) > 0 {
		if err := client.SetLanguage(config.Languages...); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set languages: %w", err)
		}
	}
	if err := client.SetPageSegMode(config.PageSegMode); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	return &Engine{client: client, config: config}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Close releases OCR resources.
func (e *Engine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// Recognize performs OCR on image data (PNG, TIFF, JPEG, etc.) and
// returns the positioned result, ready for layout classification.
func (e *Engine) Recognize(imageData []byte) (*hocr.Document, error) {
	if err := e.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	out, err := e.client.HOCRText()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	doc, err := hocr.Parse(strings.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("failed to read OCR output: %w", err)
	}
	return doc, nil
}

// RecognizeFile performs OCR on the image file at path.
func (e *Engine) RecognizeFile(path string) (*hocr.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return e.Recognize(data)
}

// Text performs OCR on image data and returns the recognized plain text
// with leading/trailing whitespace trimmed.
func (e *Engine) Text(imageData []byte) (string, error) {
	if err := e.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := e.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}
