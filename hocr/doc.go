// Package hocr reads hOCR documents, the HTML-based format OCR engines
// use to report recognized text together with its position on the page.
//
// # Structure
//
// An hOCR document nests positioned elements by class: ocr_page holds
// ocr_carea content areas, which hold ocr_par paragraphs, ocr_line text
// lines and ocrx_word words. Every element carries its pixel coordinates
// in a title attribute:
//
//	<span class='ocrx_word' title='bbox 100 100 250 140; x_wconf 96'>Erste</span>
//
// [Parse] and [ParseFile] map that hierarchy onto [Document], [Page],
// [Area], [Paragraph], [Line] and [Word]. Input in any charset declared
// by the markup is converted to UTF-8, and recognized text is
// NFC-normalized.
//
// # Classification
//
// [Page.ToLayouts] bridges a parsed page into layout regions, one
// Text-labeled region per content area with the line boxes as its text
// boxes:
//
//	doc, err := hocr.ParseFile("scan_001.hocr")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	detector := layout.NewDetector()
//	for _, page := range doc.Pages {
//	    for _, l := range page.ToLayouts() {
//	        fmt.Println(detector.Detect(l))
//	    }
//	}
package hocr
