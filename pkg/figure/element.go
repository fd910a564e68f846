package figure

import (
	"math"

	"github.com/genetracks/genetracks/pkg/svg"
)

const (
	// FlagPoint is how far the point of a Left or Right flag extends past
	// the element body, in pixels.
	FlagPoint = 10.0

	labelFontSize   = "12"
	labelFontFamily = "monospace"
)

// Element is one styled interval inside a track.
type Element struct {
	Style  Style
	Label  string
	Start  uint64
	Length uint64
	Colour string
}

// End returns Start+Length, saturating instead of wrapping on overflow.
func (e Element) End() uint64 {
	if e.Length > math.MaxUint64-e.Start {
		return math.MaxUint64
	}
	return e.Start + e.Length
}

// Render draws the element for a figure-wide scale (coordinate units per
// pixel) inside a band of the given pixel height. The result is a group
// translated to the element's start; all shapes are in that local frame.
// scale must be positive.
func (e Element) Render(scale, height float64) *svg.Node {
	length := float64(e.Length) / scale
	start := float64(e.Start) / scale
	mid := float64(e.Length) / 2 / scale

	g := svg.Group(start, 0)
	switch e.Style {
	case StyleLine:
		g.Append(e.stroke(hline(length, height)))
	case StyleBar:
		g.Append(
			e.stroke([]svg.Point{{X: 0, Y: 0}, {X: 0, Y: height}}),
			e.stroke(hline(length, height)),
			e.stroke([]svg.Point{{X: length, Y: 0}, {X: length, Y: height}}),
		)
	case StyleLeft:
		g.Append(e.fill(leftFlag(length, height)), e.label(mid, height))
	case StyleRight:
		g.Append(e.fill(rightFlag(length, height)), e.label(mid, height))
	default:
		// StyleRect, the empty tag and any tag this version does not know.
		g.Append(
			svg.Rect(0, 0, length, height, e.paint()...),
			e.label(mid, height),
		)
	}
	return g
}

// paint fills with the colour; the stroke is fully transparent and only
// smooths the shape edges.
func (e Element) paint() []svg.Attr {
	return []svg.Attr{
		svg.A("fill", e.Colour),
		svg.A("stroke", e.Colour),
		svg.A("stroke-opacity", "0"),
	}
}

func (e Element) fill(pts []svg.Point) *svg.Node {
	return svg.Path(pts, e.paint()...)
}

func (e Element) stroke(pts []svg.Point) *svg.Node {
	return svg.Path(pts, svg.A("fill", "none"), svg.A("stroke", e.Colour))
}

func (e Element) label(x, height float64) *svg.Node {
	return svg.Text(x, height/2, e.Label,
		svg.A("font-size", labelFontSize),
		svg.A("font-family", labelFontFamily),
		svg.A("text-anchor", "middle"),
		svg.A("dominant-baseline", "middle"),
	)
}

func hline(length, height float64) []svg.Point {
	return []svg.Point{{X: 0, Y: height / 2}, {X: length, Y: height / 2}}
}

// leftFlag is the body [0,length]×[0,height] with a point FlagPoint to the
// left of x=0 at mid-height.
func leftFlag(length, height float64) []svg.Point {
	return []svg.Point{
		{X: 0, Y: 0},
		{X: length, Y: 0},
		{X: length, Y: height},
		{X: 0, Y: height},
		{X: -FlagPoint, Y: height / 2},
		{X: 0, Y: 0},
	}
}

// rightFlag mirrors leftFlag: the point sits FlagPoint past x=length.
func rightFlag(length, height float64) []svg.Point {
	return []svg.Point{
		{X: 0, Y: 0},
		{X: length, Y: 0},
		{X: length + FlagPoint, Y: height / 2},
		{X: length, Y: height},
		{X: 0, Y: height},
		{X: 0, Y: 0},
	}
}
