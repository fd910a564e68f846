package io

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/genetracks/genetracks/pkg/figure"
)

type document struct {
	Width  uint    `json:"width" yaml:"width"`
	Height uint    `json:"height" yaml:"height"`
	Tracks []track `json:"tracks" yaml:"tracks"`
}

type track struct {
	Height uint      `json:"height" yaml:"height"`
	Elems  []element `json:"elems" yaml:"elems"`
}

type element struct {
	Style  string `json:"style" yaml:"style"`
	Label  string `json:"label" yaml:"label"`
	Start  uint64 `json:"start" yaml:"start"`
	Length uint64 `json:"length" yaml:"length"`
	Colour string `json:"colour" yaml:"colour"`
}

func fromFigure(f *figure.Figure) document {
	doc := document{
		Width:  f.Width,
		Height: f.Height,
		Tracks: make([]track, len(f.Tracks)),
	}
	for i, t := range f.Tracks {
		tr := track{Height: t.Height, Elems: make([]element, len(t.Elems))}
		for j, e := range t.Elems {
			tr.Elems[j] = element{
				Style:  e.Style.String(),
				Label:  e.Label,
				Start:  e.Start,
				Length: e.Length,
				Colour: e.Colour,
			}
		}
		doc.Tracks[i] = tr
	}
	return doc
}

func (doc document) toFigure() *figure.Figure {
	f := &figure.Figure{
		Width:  doc.Width,
		Height: doc.Height,
		Tracks: make([]figure.Track, len(doc.Tracks)),
	}
	for i, t := range doc.Tracks {
		tr := figure.Track{Height: t.Height, Elems: make([]figure.Element, len(t.Elems))}
		for j, e := range t.Elems {
			style := figure.Style(e.Style)
			if style == "" {
				style = figure.StyleRect
			}
			tr.Elems[j] = figure.Element{
				Style:  style,
				Label:  e.Label,
				Start:  e.Start,
				Length: e.Length,
				Colour: e.Colour,
			}
		}
		f.Tracks[i] = tr
	}
	return f
}

// ReadJSON decodes a figure document from r.
//
// The document is checked for syntax, then against [Schema], then decoded.
// Any failure is returned as a [*ParseError]. An absent element style
// decodes as [figure.StyleRect]. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*figure.Figure, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return Unmarshal(data)
}

// Unmarshal decodes a JSON figure document held in memory.
func Unmarshal(data []byte) (*figure.Figure, error) {
	return decodeJSON("json", data)
}

func decodeJSON(format string, data []byte) (*figure.Figure, error) {
	if !json.Valid(data) {
		var probe any
		err := json.Unmarshal(data, &probe)
		var syn *json.SyntaxError
		if stderrors.As(err, &syn) {
			return nil, newParseError(format, syn.Offset, err, "malformed document")
		}
		return nil, newParseError(format, -1, err, "malformed document")
	}

	if err := validate(format, data); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		pe := newParseError(format, -1, err, "decode document")
		var typ *json.UnmarshalTypeError
		if stderrors.As(err, &typ) {
			pe.Offset = typ.Offset
			pe.Field = typ.Field
		}
		return nil, pe
	}
	return doc.toFigure(), nil
}

// WriteJSON encodes f as indented JSON and writes it to w.
// Fields are written in a fixed order (width, height, tracks; height,
// elems; style, label, start, length, colour) and an empty style is
// written as "Rect", so [ReadJSON] restores an identical figure.
func WriteJSON(f *figure.Figure, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fromFigure(f)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Marshal returns the indented JSON form of f.
func Marshal(f *figure.Figure) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(f, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Format returns the pretty-printed JSON form of f.
func Format(f *figure.Figure) string {
	data, err := Marshal(f)
	if err != nil {
		// Every figure field is a plain integer or string.
		panic(err)
	}
	return string(data)
}
