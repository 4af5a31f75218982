// Package model provides the data types shared across colscan: geometric
// primitives and the page/layout structures produced by page analysis.
//
// # Geometry
//
// The [BBox] type is an axis-aligned rectangle in image coordinates
// (top-left origin, Y growing downward), stored in corner form to match
// the [x_start, y_start, x_end, y_end] arrays found in result files:
//
//	box := model.NewBBox(100, 50, 400, 90)
//	box.Width()   // 300
//	box.CenterX() // 250
//
// BBox supports intersection, union, overlap, and containment
// calculations, plus JSON encoding in the four-element array form.
//
// # Pages and Layouts
//
// A [Page] holds the segmented regions of one analyzed page. Each
// [Layout] is a labeled region (for example "Text" or "Title") carrying
// its outer bounding box and the text fragment boxes detected inside it.
// These types decode directly from page analysis result files; see the
// pages package for reading whole files.
package model
