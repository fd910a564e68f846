package svg

import (
	"fmt"
	"strings"
)

// Point is a coordinate in the local frame of the enclosing group.
type Point struct {
	X, Y float64
}

// Translate returns a transform attribute value moving the frame by (x, y).
func Translate(x, y float64) string {
	return fmt.Sprintf("translate(%s %s)", Num(x), Num(y))
}

// Group creates a <g> translated by (x, y).
func Group(x, y float64, children ...*Node) *Node {
	return New("g", A("transform", Translate(x, y))).Append(children...)
}

// Rect creates a <rect> at (x, y) with size w×h.
func Rect(x, y, w, h float64, attrs ...Attr) *Node {
	base := []Attr{A("x", x), A("y", y), A("width", w), A("height", h)}
	return New("rect", append(base, attrs...)...)
}

// Path creates a <path> through pts.
func Path(pts []Point, attrs ...Attr) *Node {
	return New("path", append([]Attr{A("d", PathData(pts))}, attrs...)...)
}

// Text creates a <text> element at (x, y).
func Text(x, y float64, content string, attrs ...Attr) *Node {
	n := New("text", append([]Attr{A("x", x), A("y", y)}, attrs...)...)
	n.Text = content
	return n
}

// PathData returns "M x,y L x,y ..." for pts.
func PathData(pts []Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteString("M")
		} else {
			b.WriteString(" L")
		}
		b.WriteString(Num(p.X))
		b.WriteByte(',')
		b.WriteString(Num(p.Y))
	}
	return b.String()
}
