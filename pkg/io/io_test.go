package io

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/genetracks/genetracks/pkg/errors"
	"github.com/genetracks/genetracks/pkg/figure"
)

func twoTrackFigure() *figure.Figure {
	return figure.New(
		figure.Track{Height: 16, Elems: []figure.Element{
			{Style: figure.StyleRect, Label: "A", Start: 0, Length: 10, Colour: "red"},
		}},
		figure.Track{Height: 16, Elems: []figure.Element{
			{Style: figure.StyleLine, Start: 5, Length: 20, Colour: "blue"},
		}},
	)
}

func TestJSONRoundTrip(t *testing.T) {
	want := twoTrackFigure()

	var buf bytes.Buffer
	if err := WriteJSON(want, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteJSONFieldOrder(t *testing.T) {
	f := figure.New(figure.Track{Height: 16, Elems: []figure.Element{
		{Label: "A", Start: 0, Length: 10, Colour: "red"},
	}})

	want := `{
  "width": 1000,
  "height": 200,
  "tracks": [
    {
      "height": 16,
      "elems": [
        {
          "style": "Rect",
          "label": "A",
          "start": 0,
          "length": 10,
          "colour": "red"
        }
      ]
    }
  ]
}
`
	if diff := cmp.Diff(want, Format(f)); diff != "" {
		t.Errorf("Format() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadJSONDefaultsStyle(t *testing.T) {
	doc := `{"width": 500, "height": 0, "tracks": [{"height": 10, "elems": [
		{"label": "x", "start": 1, "length": 2, "colour": "green"}
	]}]}`
	f, err := ReadJSON(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if got := f.Tracks[0].Elems[0].Style; got != figure.StyleRect {
		t.Errorf("Style = %q, want Rect", got)
	}
	if f.Width != 500 {
		t.Errorf("Width = %d, want 500", f.Width)
	}
}

func TestReadJSONPreservesUnknownStyle(t *testing.T) {
	doc := `{"width": 10, "height": 0, "tracks": [{"height": 10, "elems": [
		{"style": "Diamond", "label": "", "start": 0, "length": 2, "colour": "green"}
	]}]}`
	f, err := ReadJSON(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if got := f.Tracks[0].Elems[0].Style; got != "Diamond" {
		t.Errorf("Style = %q, want Diamond", got)
	}
	if !strings.Contains(Format(f), `"style": "Diamond"`) {
		t.Error("unknown style not written back verbatim")
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		wantField  string
		wantOffset bool
	}{
		{
			name:       "truncated",
			doc:        `{"width": 10, "tracks": [`,
			wantOffset: true,
		},
		{
			name:       "trailing comma",
			doc:        `{"width": 10,}`,
			wantOffset: true,
		},
		{
			name:      "missing tracks",
			doc:       `{"width": 10, "height": 0}`,
			wantField: "(root)",
		},
		{
			name:      "missing colour",
			doc:       `{"width": 10, "height": 0, "tracks": [{"height": 1, "elems": [{"label": "", "start": 0, "length": 1}]}]}`,
			wantField: "tracks.0.elems.0",
		},
		{
			name:      "negative start",
			doc:       `{"width": 10, "height": 0, "tracks": [{"height": 1, "elems": [{"label": "", "start": -4, "length": 1, "colour": "red"}]}]}`,
			wantField: "tracks.0.elems.0.start",
		},
		{
			name:      "string width",
			doc:       `{"width": "wide", "height": 0, "tracks": []}`,
			wantField: "width",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("ReadJSON() should fail")
			}
			if !errors.Is(err, errors.ErrCodeParse) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeParse)
			}

			var pe *ParseError
			if !stderrors.As(err, &pe) {
				t.Fatalf("error %T is not a *ParseError", err)
			}
			if pe.Format != "json" {
				t.Errorf("Format = %q, want json", pe.Format)
			}
			if tt.wantOffset && pe.Offset < 0 {
				t.Errorf("Offset = %d, want a byte offset", pe.Offset)
			}
			if tt.wantField != "" && pe.Field != tt.wantField {
				t.Errorf("Field = %q, want %q (problems: %v)", pe.Field, tt.wantField, pe.Problems)
			}
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	want := twoTrackFigure()

	var buf bytes.Buffer
	if err := WriteYAML(want, &buf); err != nil {
		t.Fatalf("WriteYAML() error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "width: 1000\nheight: 200\ntracks:\n") {
		t.Errorf("unexpected YAML layout:\n%s", buf.String())
	}

	got, err := ReadYAML(&buf)
	if err != nil {
		t.Fatalf("ReadYAML() error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"bad indentation", "width: 10\n  height: 3\n tracks: ["},
		{"missing elems", "width: 10\nheight: 0\ntracks:\n  - height: 4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadYAML(strings.NewReader(tt.doc))
			var pe *ParseError
			if !stderrors.As(err, &pe) {
				t.Fatalf("ReadYAML() error = %v, want *ParseError", err)
			}
			if pe.Format != "yaml" {
				t.Errorf("Format = %q, want yaml", pe.Format)
			}
		})
	}
}

func TestImportExport(t *testing.T) {
	dir := t.TempDir()
	want := twoTrackFigure()

	for _, name := range []string{"fig.json", "fig.yaml", "fig.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Export(want, path); err != nil {
				t.Fatalf("Export() error: %v", err)
			}
			got, err := Import(path)
			if err != nil {
				t.Fatalf("Import() error: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestImportMissingFile(t *testing.T) {
	_, err := Import(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Import() error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestImportRejectsExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fig.txt")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Import(path); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("Import() error = %v, want %s", err, errors.ErrCodeInvalidPath)
	}
}

func TestSchemaIsValidJSON(t *testing.T) {
	if _, err := loadSchema(); err != nil {
		t.Fatalf("schema does not compile: %v", err)
	}
	if len(Schema()) == 0 {
		t.Error("Schema() is empty")
	}
}
