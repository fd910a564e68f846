package figure

import "github.com/genetracks/genetracks/pkg/svg"

// Track is a horizontal band of fixed pixel height. Elements are drawn in
// order, so later elements sit on top of earlier ones.
type Track struct {
	Height uint
	Elems  []Element
}

// Render draws every element of t inside one group translated down by
// offset pixels.
func (t Track) Render(offset, scale float64) *svg.Node {
	g := svg.Group(0, offset)
	for _, e := range t.Elems {
		g.Append(e.Render(scale, float64(t.Height)))
	}
	return g
}

// extent returns the largest element end in t.
func (t Track) extent() uint64 {
	var max uint64
	for _, e := range t.Elems {
		if end := e.End(); end > max {
			max = end
		}
	}
	return max
}
