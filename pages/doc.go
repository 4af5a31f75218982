// Package pages reads layout-analysis result files.
//
// A result file is a JSON array of pages. Each page carries its index in
// the source document and the layout regions detected on it:
//
//	[
//	  {
//	    "index": 0,
//	    "page": [
//	      {
//	        "label": "Text",
//	        "bbox_layout": [162, 806, 1232, 2074],
//	        "bbox_text": [[170, 820, 690, 860]],
//	        "text": ["First line"]
//	      }
//	    ]
//	  }
//	]
//
// # Reading
//
// [Read] decodes a result stream and [ReadFile] a file on disk:
//
//	pgs, err := pages.ReadFile("result_json/1965/alpha.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range pgs {
//	    for _, l := range p.LayoutsByLabel(model.LabelText) {
//	        // classify l
//	    }
//	}
//
// Decoding is strict about value types but tolerant of unknown fields,
// so files produced by newer analysis runs stay readable.
package pages
