//go:build !ocr

// Package ocr recognizes text on scanned page images.
//
// This is the stub implementation used when the "ocr" build tag is not
// set. All operations return ErrNotEnabled.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
package ocr

import (
	"errors"

	"github.com/SEGHAIRII/colscan/hocr"
)

// ErrNotEnabled is returned when OCR operations are called but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// PageSegMode controls how Tesseract divides the page before
// recognition.
type PageSegMode int

// Page segmentation modes (matching the OCR-enabled implementation).
const (
	PSM_OSD_ONLY               PageSegMode = 0  // Orientation and script detection only
	PSM_AUTO_OSD               PageSegMode = 1  // Automatic with OSD
	PSM_AUTO_ONLY              PageSegMode = 2  // Automatic, no OSD or OCR
	PSM_AUTO                   PageSegMode = 3  // Fully automatic (default)
	PSM_SINGLE_COLUMN          PageSegMode = 4  // Single column of variable sizes
	PSM_SINGLE_BLOCK_VERT_TEXT PageSegMode = 5  // Single uniform block of vertically aligned text
	PSM_SINGLE_BLOCK           PageSegMode = 6  // Single uniform block of text
	PSM_SINGLE_LINE            PageSegMode = 7  // Single text line
	PSM_SINGLE_WORD            PageSegMode = 8  // Single word
	PSM_CIRCLE_WORD            PageSegMode = 9  // Single word in a circle
	PSM_SINGLE_CHAR            PageSegMode = 10 // Single character
	PSM_SPARSE_TEXT            PageSegMode = 11 // Find as much text as possible
	PSM_SPARSE_TEXT_OSD        PageSegMode = 12 // Sparse text with OSD
	PSM_RAW_LINE               PageSegMode = 13 // Treat image as single text line
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

// Engine is a stub that returns errors for all operations.
type Engine struct{}

// NewEngine returns an error indicating OCR support is not enabled.
// To enable OCR, rebuild with: go build -tags ocr
func NewEngine() (*Engine, error) {
	return nil, ErrNotEnabled
}

// NewEngineWithConfig returns an error indicating OCR support is not
// enabled.
func NewEngineWithConfig(config Config) (*Engine, error) {
	return nil, ErrNotEnabled
}

// Config returns the zero configuration.
func (e *Engine) Config() Config {
	return Config{}
}

// Close is a no-op for the stub engine.
// It is safe to call on a nil engine.
func (e *Engine) Close() error {
	return nil
}

// Recognize returns an error indicating OCR support is not enabled.
func (e *Engine) Recognize(imageData []byte) (*hocr.Document, error) {
	return nil, ErrNotEnabled
}

// RecognizeFile returns an error indicating OCR support is not enabled.
func (e *Engine) RecognizeFile(path string) (*hocr.Document, error) {
	return nil, ErrNotEnabled
}

// Text returns an error indicating OCR support is not enabled.
func (e *Engine) Text(imageData []byte) (string, error) {
	return "", ErrNotEnabled
}
