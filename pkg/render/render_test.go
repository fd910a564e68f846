package render

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/genetracks/genetracks/pkg/errors"
	"github.com/genetracks/genetracks/pkg/figure"
	"github.com/genetracks/genetracks/pkg/svg"
)

func sampleFigure() *figure.Figure {
	f := figure.New(
		figure.Track{Height: 16, Elems: []figure.Element{
			{Style: figure.StyleRect, Label: "exon", Start: 0, Length: 100, Colour: "steelblue"},
			{Style: figure.StyleRight, Label: "cds", Start: 120, Length: 80, Colour: "#f80"},
		}},
		figure.Track{Height: 20, Elems: []figure.Element{
			{Style: figure.StyleLine, Start: 0, Length: 200, Colour: "black"},
		}},
	)
	f.Width = 200
	return f
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		token string
		want  color.RGBA
		ok    bool
	}{
		{"grey", color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, true},
		{"  SteelBlue ", color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}, true},
		{"#ff8800", color.RGBA{R: 0xff, G: 0x88, B: 0x00, A: 0xff}, true},
		{"#f80", color.RGBA{R: 0xff, G: 0x88, B: 0x00, A: 0xff}, true},
		{"blurple", color.RGBA{A: 0xff}, false},
		{"#zzzzzz", color.RGBA{A: 0xff}, false},
		{"", color.RGBA{A: 0xff}, false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseColour(tt.token)
			if ok != tt.ok {
				t.Errorf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("colour = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalise(t *testing.T) {
	root := svg.New("svg").Append(
		svg.Rect(0, 0, 10, 10, svg.A("fill", "red"), svg.A("stroke", "nonsense")),
		svg.Path([]svg.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, svg.A("fill", "none"), svg.A("stroke", "#00f")),
		svg.Text(5, 5, "label"),
	)

	got := normalise(root, true)

	if n := len(got.Find("text")); n != 0 {
		t.Errorf("text nodes = %d, want 0", n)
	}
	rect := got.Find("rect")[0]
	if fill, _ := rect.Attr("fill"); fill != "#ff0000" {
		t.Errorf("rect fill = %q, want #ff0000", fill)
	}
	if stroke, _ := rect.Attr("stroke"); stroke != "#000000" {
		t.Errorf("rect stroke = %q, want #000000", stroke)
	}
	path := got.Find("path")[0]
	if fill, _ := path.Attr("fill"); fill != "none" {
		t.Errorf("path fill = %q, want none", fill)
	}
	if fill, _ := root.Find("rect")[0].Attr("fill"); fill != "red" {
		t.Errorf("input was modified: fill = %q", fill)
	}
	if len(normalise(root, false).Find("text")) != 1 {
		t.Error("text dropped when dropText is false")
	}
}

func TestSVG(t *testing.T) {
	root := sampleFigure().ToDrawing()
	got := string(SVG(root))

	if !strings.HasPrefix(got, "<svg ") {
		t.Errorf("output does not start with root element:\n%s", got)
	}
	if diff := cmp.Diff(root.String(), got); diff != "" {
		t.Errorf("SVG differs from Node.String (-want +got):\n%s", diff)
	}
	for _, want := range []string{`fill="steelblue"`, `fill="#f80"`, ">exon</text>", `preserveAspectRatio="none"`} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %s", want)
		}
	}
}

func TestRaster(t *testing.T) {
	f := sampleFigure()
	root := f.ToDrawing()

	img, err := Raster(root, 2)
	if err != nil {
		t.Fatalf("Raster: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 400 || b.Dy() != int(f.Height)*2 {
		t.Errorf("bounds = %v, want 400x%d", b, f.Height*2)
	}

	// Inside the steelblue rect, away from its label.
	got := img.RGBAAt(4, 4)
	want := color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}
	if got != want {
		t.Errorf("rect pixel = %v, want %v", got, want)
	}
	// Gap between the two elements of the first track.
	if got := img.RGBAAt(220, 16); got != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("gap pixel = %v, want white", got)
	}
}

func TestRasterBlank(t *testing.T) {
	f := figure.New()
	img, err := Raster(f.ToDrawing(), 1)
	if err != nil {
		t.Fatalf("Raster: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("bounds = %v, want 1x1", b)
	}
}

func TestPNG(t *testing.T) {
	data, err := PNG(sampleFigure().ToDrawing(), 1)
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 200 {
		t.Errorf("width = %d, want 200", img.Bounds().Dx())
	}
}

func TestPNGInvalidScale(t *testing.T) {
	for _, scale := range []float64{0, -1, 100} {
		_, err := PNG(sampleFigure().ToDrawing(), scale)
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("scale %v: err = %v, want INVALID_INPUT", scale, err)
		}
	}
}

func TestPDF(t *testing.T) {
	tests := []struct {
		name string
		fig  *figure.Figure
	}{
		{"sample", sampleFigure()},
		{"blank", figure.New()},
		{"non-latin label", figure.New(figure.Track{Height: 10, Elems: []figure.Element{
			{Style: figure.StyleLeft, Label: "Δ-exon", Length: 10, Colour: "teal"},
		}})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := PDF(tt.fig.ToDrawing())
			if err != nil {
				t.Fatalf("PDF: %v", err)
			}
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				t.Errorf("missing PDF header: %q", data[:min(len(data), 8)])
			}
		})
	}
}

func TestPDFBadTransform(t *testing.T) {
	root := svg.New("svg", svg.A("width", 10), svg.A("height", 10)).Append(
		svg.New("g", svg.A("transform", "rotate(45)")),
	)
	if _, err := PDF(root); err == nil {
		t.Error("expected error for unsupported transform")
	}
}

func TestRasterRejectsHugeCanvas(t *testing.T) {
	f := &figure.Figure{Width: 100000, Tracks: []figure.Track{{Height: 100000}}}

	_, err := Raster(f.ToDrawing(), 1)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("Raster error = %v, want INVALID_INPUT", err)
	}

	// The cap applies after scaling.
	f = &figure.Figure{Width: 4000, Tracks: []figure.Track{{Height: 4000}}}
	if _, err := PNG(f.ToDrawing(), 4); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("PNG error = %v, want INVALID_INPUT", err)
	}
}
