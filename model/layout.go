package model

// Common layout labels emitted by page segmentation models. Label values
// are free-form strings in result files; these cover the usual vocabulary.
const (
	LabelText   = "Text"
	LabelTitle  = "Title"
	LabelList   = "List"
	LabelTable  = "Table"
	LabelFigure = "Figure"
)

// Layout is one segmented region of a page: an outer bounding box plus
// the text fragment boxes detected inside it. The text content runs
// parallel to TextBoxes (Text[i] belongs to TextBoxes[i]) and may be
// empty when the producer did not include recognized text.
type Layout struct {
	Label     string   `json:"label"`
	Bounds    BBox     `json:"bbox_layout"`
	TextBoxes []BBox   `json:"bbox_text"`
	Text      []string `json:"text"`
}

// TextAt returns the recognized text for fragment i, or the empty
// string when no text was recorded for it
func (l Layout) TextAt(i int) string {
	if i < 0 || i >= len(l.Text) {
		return ""
	}
	return l.Text[i]
}

// Page is a single analyzed page: its index within the source document
// and the layouts segmented out of it.
type Page struct {
	Index   int      `json:"index"`
	Layouts []Layout `json:"page"`
}

// LayoutsByLabel returns the layouts carrying the given label
func (p Page) LayoutsByLabel(label string) []Layout {
	var matched []Layout
	for _, l := range p.Layouts {
		if l.Label == label {
			matched = append(matched, l)
		}
	}
	return matched
}

// Extent returns the smallest box covering every layout on the page,
// or the zero box for a page without layouts
func (p Page) Extent() BBox {
	if len(p.Layouts) == 0 {
		return BBox{}
	}
	extent := p.Layouts[0].Bounds
	for _, l := range p.Layouts[1:] {
		extent = extent.Union(l.Bounds)
	}
	return extent
}
