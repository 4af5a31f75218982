// Package render draws classified pages as raster images.
//
// A rendered page is a white canvas sized to the page's layout extent
// plus a margin. Every layout region is outlined (green and thicker when
// classified as two-column, red otherwise) and its text boxes are
// lightly shaded with an identifying tag and a short text preview.
//
//	renderer := render.NewRenderer()
//	img, err := renderer.RenderPage(page, verdicts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := render.WritePNG("visualizations/1965/alpha_page_0.png", img); err != nil {
//	    log.Fatal(err)
//	}
//
// Rendering exists for inspection of classification runs; nothing in it
// feeds back into detection.
package render
