package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// BBox represents an axis-aligned bounding box in image coordinates
// (origin at the top-left corner, Y growing downward). Boxes are stored
// in corner form, matching the [x_start, y_start, x_end, y_end] arrays
// used by page analysis result files.
type BBox struct {
	XStart float64
	YStart float64
	XEnd   float64
	YEnd   float64
}

// NewBBox creates a bounding box from corner coordinates
func NewBBox(xStart, yStart, xEnd, yEnd float64) BBox {
	return BBox{XStart: xStart, YStart: yStart, XEnd: xEnd, YEnd: yEnd}
}

// Width returns the horizontal extent of the box
func (b BBox) Width() float64 {
	return b.XEnd - b.XStart
}

// Height returns the vertical extent of the box
func (b BBox) Height() float64 {
	return b.YEnd - b.YStart
}

// CenterX returns the horizontal center of the box
func (b BBox) CenterX() float64 {
	return (b.XStart + b.XEnd) / 2
}

// CenterY returns the vertical center of the box
func (b BBox) CenterY() float64 {
	return (b.YStart + b.YEnd) / 2
}

// Area returns the area of the box
func (b BBox) Area() float64 {
	return b.Width() * b.Height()
}

// IsZero reports whether the box is the zero value
func (b BBox) IsZero() bool {
	return b == BBox{}
}

// IsValid reports whether the corners are ordered (XEnd >= XStart and
// YEnd >= YStart). Boxes violating this are malformed input.
func (b BBox) IsValid() bool {
	return b.XEnd >= b.XStart && b.YEnd >= b.YStart
}

// IsEmpty reports whether the box has zero or negative area
func (b BBox) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Contains checks whether a point lies inside the box
func (b BBox) Contains(x, y float64) bool {
	return x >= b.XStart && x <= b.XEnd &&
		y >= b.YStart && y <= b.YEnd
}

// Intersects checks whether two boxes overlap
func (b BBox) Intersects(other BBox) bool {
	return !(b.XEnd < other.XStart ||
		b.XStart > other.XEnd ||
		b.YEnd < other.YStart ||
		b.YStart > other.YEnd)
}

// Intersection returns the overlapping region of two boxes, or the zero
// box when they do not intersect
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}
	return BBox{
		XStart: math.Max(b.XStart, other.XStart),
		YStart: math.Max(b.YStart, other.YStart),
		XEnd:   math.Min(b.XEnd, other.XEnd),
		YEnd:   math.Min(b.YEnd, other.YEnd),
	}
}

// Union returns the smallest box covering both boxes
func (b BBox) Union(other BBox) BBox {
	return BBox{
		XStart: math.Min(b.XStart, other.XStart),
		YStart: math.Min(b.YStart, other.YStart),
		XEnd:   math.Max(b.XEnd, other.XEnd),
		YEnd:   math.Max(b.YEnd, other.YEnd),
	}
}

// HorizontalOverlap returns the width of the horizontal range shared by
// two boxes, clamped at zero
func (b BBox) HorizontalOverlap(other BBox) float64 {
	return math.Max(0, math.Min(b.XEnd, other.XEnd)-math.Max(b.XStart, other.XStart))
}

// VerticalOverlap returns the height of the vertical range shared by
// two boxes, clamped at zero
func (b BBox) VerticalOverlap(other BBox) float64 {
	return math.Max(0, math.Min(b.YEnd, other.YEnd)-math.Max(b.YStart, other.YStart))
}

// Expand grows the box by a margin on all sides
func (b BBox) Expand(margin float64) BBox {
	return BBox{
		XStart: b.XStart - margin,
		YStart: b.YStart - margin,
		XEnd:   b.XEnd + margin,
		YEnd:   b.YEnd + margin,
	}
}

// MarshalJSON encodes the box as the [x_start, y_start, x_end, y_end]
// array used by result files
func (b BBox) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{b.XStart, b.YStart, b.XEnd, b.YEnd})
}

// UnmarshalJSON decodes a [x_start, y_start, x_end, y_end] array
func (b *BBox) UnmarshalJSON(data []byte) error {
	var corners [4]float64
	if err := json.Unmarshal(data, &corners); err != nil {
		return fmt.Errorf("bbox: expected [x_start, y_start, x_end, y_end]: %w", err)
	}
	b.XStart, b.YStart, b.XEnd, b.YEnd = corners[0], corners[1], corners[2], corners[3]
	return nil
}
