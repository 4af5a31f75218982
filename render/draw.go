package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// previewMax caps the text preview drawn inside a text box.
const previewMax = 15

var (
	white        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	previewColor = color.RGBA{R: 47, G: 79, B: 79, A: 255}
)

// strokeRect draws the rectangle outline with the given stroke width,
// kept inside the rectangle bounds.
func strokeRect(img *image.RGBA, rect image.Rectangle, c color.RGBA, width int) {
	for i := 0; i < width; i++ {
		inset := rect.Inset(i)
		if inset.Empty() {
			return
		}
		for x := inset.Min.X; x < inset.Max.X; x++ {
			img.SetRGBA(x, inset.Min.Y, c)
			img.SetRGBA(x, inset.Max.Y-1, c)
		}
		for y := inset.Min.Y; y < inset.Max.Y; y++ {
			img.SetRGBA(inset.Min.X, y, c)
			img.SetRGBA(inset.Max.X-1, y, c)
		}
	}
}

// shadeRect fills the rectangle by blending the color at the given
// opacity over what is already drawn.
func shadeRect(img *image.RGBA, rect image.Rectangle, c color.RGBA, alpha float64) {
	clipped := rect.Intersect(img.Bounds())
	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		for x := clipped.Min.X; x < clipped.Max.X; x++ {
			dst := img.RGBAAt(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: blend(c.R, dst.R, alpha),
				G: blend(c.G, dst.G, alpha),
				B: blend(c.B, dst.B, alpha),
				A: 255,
			})
		}
	}
}

func blend(src, dst uint8, alpha float64) uint8 {
	return uint8(float64(src)*alpha + float64(dst)*(1-alpha))
}

// drawLabel draws text with its baseline at (x, y) over a translucent
// white backing so it stays readable on busy regions.
func drawLabel(img *image.RGBA, x, y int, text string, c color.RGBA) {
	if text == "" {
		return
	}

	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()

	backing := image.Rect(x-1, y-face.Ascent-1, x+width+1, y+face.Descent+1)
	shadeRect(img, backing, white, 0.8)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// preview shortens text to a label-sized excerpt.
func preview(s string) string {
	runes := []rune(s)
	if len(runes) > previewMax {
		return string(runes[:previewMax]) + "..."
	}
	return s
}
