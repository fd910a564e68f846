// Package figure implements the track layout and rendering engine.
//
// # Overview
//
// A [Figure] is a stack of horizontal [Track] bands. Each track holds
// [Element] values positioned by a start offset and a length in an abstract
// coordinate space (base pairs, for a genomic figure). Rendering turns that
// document into an [svg.Node] tree with explicit translations:
//
//	f := figure.New(
//	    figure.Track{Height: 16, Elems: []figure.Element{
//	        {Style: figure.StyleRight, Label: "gag", Start: 0, Length: 1500, Colour: "teal"},
//	    }},
//	)
//	root := f.ToDrawing()
//
// # Layout
//
// Rendering is two passes over the document. [Figure.Measure] finds the
// widest element end across every track, which fixes one horizontal scale
// for the whole figure, and accumulates each track's height plus [Padding]
// to produce the vertical offsets and canvas height. [Figure.ToDrawing]
// then emits each track at its offset with the shared scale.
//
// A figure whose elements all end at 0 has no horizontal extent. It is
// rendered as a blank canvas: the root and one empty group per track are
// emitted, and no scale-dependent geometry is produced.
//
// # Styles
//
// [Style] is a closed set: Rect, Line, Bar, Left and Right. Tags outside the
// set are kept as-is in the document and drawn like Rect, so documents
// written by newer producers still render.
package figure
