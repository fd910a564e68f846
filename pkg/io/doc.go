// Package io reads and writes figure documents.
//
// # Overview
//
// The layout engine in [figure] works on an in-memory document. This package
// is the textual side: it decodes JSON or YAML into a [figure.Figure] and
// encodes it back with a stable field order, so a document survives a round
// trip unchanged.
//
// # Format
//
//	{
//	  "width": 1000,
//	  "height": 200,
//	  "tracks": [
//	    {
//	      "height": 16,
//	      "elems": [
//	        {"style": "Rect", "label": "A", "start": 0, "length": 10, "colour": "red"}
//	      ]
//	    }
//	  ]
//	}
//
// Required fields:
//   - figure: width, height, tracks
//   - track: height, elems
//   - element: label, start, length, colour
//
// The element style is optional and defaults to "Rect". Style tags outside
// the known set are preserved verbatim. height is accepted and written back,
// but the renderer recomputes it from the tracks.
//
// YAML documents use the same field names.
//
// # Errors
//
// Every decoding failure is a [*ParseError] whose chain carries
// [errors.ErrCodeParse]. Syntax errors report a byte offset; missing or
// mistyped fields report the schema path of the offending value:
//
//	f, err := io.ReadJSON(r)
//	var pe *io.ParseError
//	if stderrors.As(err, &pe) {
//	    fmt.Println(pe.Field, pe.Offset)
//	}
//
// [figure]: github.com/genetracks/genetracks/pkg/figure
// [figure.Figure]: github.com/genetracks/genetracks/pkg/figure.Figure
// [errors.ErrCodeParse]: github.com/genetracks/genetracks/pkg/errors.ErrCodeParse
package io
