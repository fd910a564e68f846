// Package render turns a drawing tree into output bytes.
//
// # Overview
//
// The figure engine produces an [svg.Node] tree. The sinks here serialise
// that tree:
//
//   - [SVG]: indented SVG markup
//   - [PNG]: a raster image, drawn with oksvg and rasterx
//   - [PDF]: a single vector page, drawn with gofpdf
//
// Usage:
//
//	root := fig.ToDrawing()
//	svgData := render.SVG(root)
//	pngData, err := render.PNG(root, 2) // 2x resolution
//	pdfData, err := render.PDF(root)
//
// # Colours
//
// Element colours are opaque tokens in the document. SVG output passes
// them through unchanged. The PNG and PDF sinks need concrete values and
// resolve tokens with [ParseColour]: SVG colour keywords ("grey",
// "steelblue") and hex notation ("#f80", "#ff8800"). Anything else is
// drawn black.
//
// # Labels
//
// oksvg does not rasterise text, so [PNG] strips text nodes before
// rasterising and draws the labels afterwards with a fixed 7x13 bitmap
// face. [PDF] uses the built-in Courier face at 12pt.
//
// [svg.Node]: github.com/genetracks/genetracks/pkg/svg.Node
package render
