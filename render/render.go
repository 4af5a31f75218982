package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/SEGHAIRII/colscan/model"
)

// RenderConfig controls how pages are drawn.
type RenderConfig struct {
	// Margin is the whitespace added around the page extent, in page
	// units. Default: 50.
	Margin float64

	// Scale maps page units to pixels. Default: 1.
	Scale float64

	// TwoColumnStroke is the outline width, in pixels, for layouts
	// classified as two-column. Default: 3.
	TwoColumnStroke int

	// LayoutStroke is the outline width for other layouts. Default: 2.
	LayoutStroke int

	// Background fills the canvas. Default: white.
	Background color.RGBA

	// TwoColumnColor outlines layouts classified as two-column.
	// Default: green.
	TwoColumnColor color.RGBA

	// LayoutColor outlines other layouts. Default: red.
	LayoutColor color.RGBA

	// TextBoxColor outlines and shades text boxes. Default: steel blue.
	TextBoxColor color.RGBA

	// LabelColor draws layout and text box labels. Default: black.
	LabelColor color.RGBA
}

// DefaultRenderConfig returns the rendering defaults.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Margin:          50,
		Scale:           1,
		TwoColumnStroke: 3,
		LayoutStroke:    2,
		Background:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		TwoColumnColor:  color.RGBA{G: 128, A: 255},
		LayoutColor:     color.RGBA{R: 255, A: 255},
		TextBoxColor:    color.RGBA{R: 70, G: 130, B: 180, A: 255},
		LabelColor:      color.RGBA{A: 255},
	}
}

// Renderer draws pages using a fixed configuration.
type Renderer struct {
	config RenderConfig
}

// NewRenderer creates a renderer with default configuration.
func NewRenderer() *Renderer {
	return NewRendererWithConfig(DefaultRenderConfig())
}

// NewRendererWithConfig creates a renderer with the given configuration.
func NewRendererWithConfig(config RenderConfig) *Renderer {
	return &Renderer{config: config}
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() RenderConfig {
	return r.config
}

// RenderPage draws every layout of the page onto a fresh canvas.
// twoColumn supplies the per-layout verdicts in layout order; missing
// entries count as false, so a nil slice renders all layouts as
// ordinary regions.
func (r *Renderer) RenderPage(p model.Page, twoColumn []bool) (*image.RGBA, error) {
	if len(p.Layouts) == 0 {
		return nil, fmt.Errorf("page %d has no layouts to render", p.Index)
	}

	canvas := p.Extent().Expand(r.config.Margin)
	width := int(math.Ceil(canvas.Width() * r.config.Scale))
	height := int(math.Ceil(canvas.Height() * r.config.Scale))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("page %d has a degenerate extent", p.Index)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.config.Background), image.Point{}, draw.Src)

	for i, l := range p.Layouts {
		r.drawLayout(img, canvas, i, l, i < len(twoColumn) && twoColumn[i])
	}

	return img, nil
}

// drawLayout draws one layout region: its outline, its label, and its
// text boxes.
func (r *Renderer) drawLayout(img *image.RGBA, canvas model.BBox, idx int, l model.Layout, twoColumn bool) {
	edge, stroke := r.config.LayoutColor, r.config.LayoutStroke
	if twoColumn {
		edge, stroke = r.config.TwoColumnColor, r.config.TwoColumnStroke
	}

	rect := r.pixelRect(canvas, l.Bounds)
	strokeRect(img, rect, edge, stroke)

	label := fmt.Sprintf("L%d: %s", idx, l.Label)
	if twoColumn {
		label += " (2 cols)"
	}
	drawLabel(img, rect.Min.X+5, rect.Min.Y+20, label, r.config.LabelColor)

	for j, box := range l.TextBoxes {
		boxRect := r.pixelRect(canvas, box)
		shadeRect(img, boxRect, r.config.TextBoxColor, 0.3)
		strokeRect(img, boxRect, r.config.TextBoxColor, 1)
		drawLabel(img, boxRect.Min.X+2, boxRect.Min.Y+10, fmt.Sprintf("L%d-T%d", idx, j), r.config.LabelColor)

		if text := preview(l.TextAt(j)); text != "" {
			drawLabel(img, boxRect.Min.X+2, boxRect.Min.Y+boxRect.Dy()/2+5, text, previewColor)
		}
	}
}

// pixelRect maps a box from page coordinates onto the canvas.
func (r *Renderer) pixelRect(canvas model.BBox, b model.BBox) image.Rectangle {
	scale := r.config.Scale
	return image.Rect(
		int(math.Round((b.XStart-canvas.XStart)*scale)),
		int(math.Round((b.YStart-canvas.YStart)*scale)),
		int(math.Round((b.XEnd-canvas.XStart)*scale)),
		int(math.Round((b.YEnd-canvas.YStart)*scale)),
	)
}

// WritePNG encodes the image and writes it to path, creating parent
// directories as needed.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return f.Close()
}
