package hocr

import (
	"strings"

	"github.com/SEGHAIRII/colscan/model"
)

// Word is a single recognized word.
type Word struct {
	Bounds model.BBox

	// Text is the recognized word, NFC-normalized.
	Text string

	// Confidence is the engine's word confidence (x_wconf) on a 0-100
	// scale, or 0 when the document does not report one.
	Confidence float64
}

// Line is one text line of recognized words.
type Line struct {
	Bounds model.BBox
	Words  []Word
}

// Text joins the line's words with single spaces.
func (l Line) Text() string {
	parts := make([]string, 0, len(l.Words))
	for _, w := range l.Words {
		if w.Text != "" {
			parts = append(parts, w.Text)
		}
	}
	return strings.Join(parts, " ")
}

// Paragraph groups consecutive lines.
type Paragraph struct {
	Bounds model.BBox
	Lines  []Line
}

// Area is a content area (ocr_carea), the block level layout
// classification works on.
type Area struct {
	Bounds     model.BBox
	Paragraphs []Paragraph
}

// Lines returns the area's lines across all paragraphs, in document
// order.
func (a Area) Lines() []Line {
	var lines []Line
	for _, p := range a.Paragraphs {
		lines = append(lines, p.Lines...)
	}
	return lines
}

// Page is one scanned page.
type Page struct {
	// Index is the page number recorded in the document (ppageno), or
	// the page's position when the document does not record one.
	Index int

	Bounds model.BBox
	Areas  []Area
}

// ToLayouts converts the page's content areas into layout regions, one
// Text-labeled region per area with the line boxes as its text boxes.
func (p Page) ToLayouts() []model.Layout {
	layouts := make([]model.Layout, 0, len(p.Areas))
	for _, a := range p.Areas {
		lines := a.Lines()
		l := model.Layout{
			Label:     model.LabelText,
			Bounds:    a.Bounds,
			TextBoxes: make([]model.BBox, 0, len(lines)),
			Text:      make([]string, 0, len(lines)),
		}
		for _, line := range lines {
			l.TextBoxes = append(l.TextBoxes, line.Bounds)
			l.Text = append(l.Text, line.Text())
		}
		layouts = append(layouts, l)
	}
	return layouts
}

// ToPage converts the page into a model page ready for classification.
func (p Page) ToPage() model.Page {
	return model.Page{Index: p.Index, Layouts: p.ToLayouts()}
}

// Document is a parsed hOCR document.
type Document struct {
	Pages []Page
}
