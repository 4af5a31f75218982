// Package colscan decides whether scanned document regions are laid out in
// two columns.
//
// Basic usage:
//
//	doc, err := colscan.Open("result_json/1965/report.json")
//	if err != nil {
//	    // handle error
//	}
//	for _, page := range doc.Pages() {
//	    for _, l := range page.LayoutsByLabel(model.LabelText) {
//	        if colscan.DetectTwoColumn(l) {
//	            fmt.Printf("page %d: two columns\n", page.Index)
//	        }
//	    }
//	}
//
// For custom thresholds or per-stage diagnostics, the lower-level layout
// package is also available.
package colscan

import (
	"io"

	"github.com/SEGHAIRII/colscan/layout"
	"github.com/SEGHAIRII/colscan/model"
	"github.com/SEGHAIRII/colscan/pages"
)

// defaultDetector backs the package-level classification helpers. Detectors
// are stateless, so a single shared instance is safe for concurrent use.
var defaultDetector = layout.NewDetector()

// Document holds the decoded pages of one result file.
type Document struct {
	pages []model.Page
}

// Open reads a result file and returns the document it describes.
//
// Example:
//
//	doc, err := colscan.Open("result_json/1965/report.json")
func Open(path string) (*Document, error) {
	pp, err := pages.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Document{pages: pp}, nil
}

// FromReader decodes a result document from r. This is useful when the
// document does not live on disk, for example when it arrives over a
// network connection or is embedded in a test.
//
// Example:
//
//	doc, err := colscan.FromReader(resp.Body)
func FromReader(r io.Reader) (*Document, error) {
	pp, err := pages.Read(r)
	if err != nil {
		return nil, err
	}
	return &Document{pages: pp}, nil
}

// Pages returns the document's pages in file order.
func (d *Document) Pages() []model.Page {
	return d.pages
}

// DetectTwoColumn reports whether l is a two-column layout, using the
// default detector configuration. For custom thresholds, construct a
// detector with layout.NewDetectorWithConfig; for per-stage diagnostics,
// use its Analyze method.
func DetectTwoColumn(l model.Layout) bool {
	return defaultDetector.Detect(l)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := colscan.Must(colscan.Open("result_json/1965/report.json"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
