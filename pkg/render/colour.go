package render

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/genetracks/genetracks/pkg/svg"
)

// ParseColour resolves a colour token to an opaque RGBA value.
// ok is false, and black is returned, for tokens it does not understand.
func ParseColour(token string) (c color.RGBA, ok bool) {
	s := strings.ToLower(strings.TrimSpace(token))
	if named, found := colornames.Map[s]; found {
		return named, true
	}
	if strings.HasPrefix(s, "#") {
		if hex, err := colorful.Hex(s); err == nil {
			r, g, b := hex.RGB255()
			return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
		}
	}
	return color.RGBA{A: 0xff}, false
}

// hexColour returns token in #rrggbb form, or "none" unchanged.
func hexColour(token string) string {
	if token == "none" {
		return token
	}
	c, _ := ParseColour(token)
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// normalise returns a copy of root with fill and stroke tokens resolved to
// hex and, if dropText is set, without text nodes.
func normalise(root *svg.Node, dropText bool) *svg.Node {
	out := &svg.Node{Name: root.Name, Text: root.Text, Attrs: make([]svg.Attr, len(root.Attrs))}
	for i, a := range root.Attrs {
		if a.Name == "fill" || a.Name == "stroke" {
			a.Value = hexColour(a.Value)
		}
		out.Attrs[i] = a
	}
	for _, c := range root.Children {
		if dropText && c.Name == "text" {
			continue
		}
		out.Children = append(out.Children, normalise(c, dropText))
	}
	return out
}

func attrFloat(n *svg.Node, name string) float64 {
	v, ok := n.Attr(name)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}
