package hocr

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"

	"github.com/SEGHAIRII/colscan/model"
)

// lineClasses covers ocr_line and its specializations.
var lineClasses = []string{"ocr_line", "ocr_caption", "ocr_textfloat", "ocr_header"}

// Parse reads an hOCR document from r. The input may use any charset
// declared in its markup; text is converted to UTF-8.
func Parse(r io.Reader) (*Document, error) {
	cr, err := charset.NewReader(r, "text/html")
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}

	root, err := html.Parse(cr)
	if err != nil {
		return nil, fmt.Errorf("parsing hOCR: %w", err)
	}

	doc := &Document{}
	collectClass(root, func(n *html.Node) {
		doc.Pages = append(doc.Pages, parsePage(n, len(doc.Pages)))
	}, "ocr_page")

	return doc, nil
}

// ParseFile parses the hOCR file at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func parsePage(n *html.Node, ordinal int) Page {
	title := attrValue(n, "title")

	p := Page{Index: ordinal}
	if num, ok := pageNumber(title); ok {
		p.Index = num
	}
	p.Bounds, _ = titleBounds(title)

	collectChildClass(n, func(c *html.Node) {
		p.Areas = append(p.Areas, parseArea(c))
	}, "ocr_carea", "ocrx_block")

	return p
}

func parseArea(n *html.Node) Area {
	a := Area{}
	a.Bounds, _ = titleBounds(attrValue(n, "title"))

	collectChildClass(n, func(c *html.Node) {
		a.Paragraphs = append(a.Paragraphs, parseParagraph(c))
	}, "ocr_par")

	// Some producers skip the paragraph level; gather stray lines into
	// a synthetic paragraph so they are not lost.
	if len(a.Paragraphs) == 0 {
		p := parseParagraph(n)
		if len(p.Lines) > 0 {
			a.Paragraphs = append(a.Paragraphs, p)
		}
	}

	return a
}

func parseParagraph(n *html.Node) Paragraph {
	p := Paragraph{}
	p.Bounds, _ = titleBounds(attrValue(n, "title"))

	collectChildClass(n, func(c *html.Node) {
		p.Lines = append(p.Lines, parseLine(c))
	}, lineClasses...)

	return p
}

func parseLine(n *html.Node) Line {
	l := Line{}
	l.Bounds, _ = titleBounds(attrValue(n, "title"))

	collectChildClass(n, func(c *html.Node) {
		l.Words = append(l.Words, parseWord(c))
	}, "ocrx_word")

	return l
}

func parseWord(n *html.Node) Word {
	title := attrValue(n, "title")

	w := Word{Text: norm.NFC.String(strings.TrimSpace(textContent(n)))}
	w.Bounds, _ = titleBounds(title)
	w.Confidence = wordConfidence(title)

	return w
}

// collectClass calls fn on every node under n carrying one of the
// classes, without descending into matched nodes.
func collectClass(n *html.Node, fn func(*html.Node), classes ...string) {
	if n.Type == html.ElementNode && hasClass(n, classes...) {
		fn(n)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectClass(c, fn, classes...)
	}
}

// collectChildClass is collectClass starting below n, so a node never
// matches itself.
func collectChildClass(n *html.Node, fn func(*html.Node), classes ...string) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectClass(c, fn, classes...)
	}
}

func hasClass(n *html.Node, classes ...string) bool {
	for _, c := range strings.Fields(attrValue(n, "class")) {
		for _, want := range classes {
			if c == want {
				return true
			}
		}
	}
	return false
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// titleBounds extracts the bbox property from an hOCR title attribute.
func titleBounds(title string) (model.BBox, bool) {
	for _, prop := range splitTitle(title) {
		var x0, y0, x1, y1 float64
		if n, err := fmt.Sscanf(prop, "bbox %f %f %f %f", &x0, &y0, &x1, &y1); err == nil && n == 4 {
			return model.NewBBox(x0, y0, x1, y1), true
		}
	}
	return model.BBox{}, false
}

// wordConfidence extracts the x_wconf property, or 0 when absent.
func wordConfidence(title string) float64 {
	for _, prop := range splitTitle(title) {
		var conf float64
		if n, err := fmt.Sscanf(prop, "x_wconf %f", &conf); err == nil && n == 1 {
			return conf
		}
	}
	return 0
}

// pageNumber extracts the ppageno property.
func pageNumber(title string) (int, bool) {
	for _, prop := range splitTitle(title) {
		var num int
		if n, err := fmt.Sscanf(prop, "ppageno %d", &num); err == nil && n == 1 {
			return num, true
		}
	}
	return 0, false
}

// splitTitle splits an hOCR title attribute into its semicolon-separated
// properties.
func splitTitle(title string) []string {
	props := strings.Split(title, ";")
	for i, p := range props {
		props[i] = strings.TrimSpace(p)
	}
	return props
}

// textContent extracts all text content from a node and its descendants.
func textContent(n *html.Node) string {
	var b strings.Builder
	appendText(n, &b)
	return b.String()
}

func appendText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(c, b)
	}
}
