package svg

import (
	"strconv"
	"strings"
)

// Attr is a single name="value" attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is an element of the drawing tree.
// Attribute order is preserved so that encoding is deterministic.
type Node struct {
	Name     string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// New creates a node with the given element name and attributes.
func New(name string, attrs ...Attr) *Node {
	return &Node{Name: name, Attrs: attrs}
}

// A builds an attribute. Floats are formatted with [Num]; everything else
// must already be a string or an integer.
func A(name string, v any) Attr {
	switch x := v.(type) {
	case string:
		return Attr{Name: name, Value: x}
	case float64:
		return Attr{Name: name, Value: Num(x)}
	case int:
		return Attr{Name: name, Value: strconv.Itoa(x)}
	case uint:
		return Attr{Name: name, Value: strconv.FormatUint(uint64(x), 10)}
	case uint64:
		return Attr{Name: name, Value: strconv.FormatUint(x, 10)}
	default:
		panic("svg: unsupported attribute type")
	}
}

// Append adds children and returns n for chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Find returns every descendant of n (n included) with the given name,
// in document order.
func (n *Node) Find(name string) []*Node {
	var out []*Node
	var visit func(*Node)
	visit = func(c *Node) {
		if c.Name == name {
			out = append(out, c)
		}
		for _, ch := range c.Children {
			visit(ch)
		}
	}
	visit(n)
	return out
}

// String returns the encoded markup of n.
func (n *Node) String() string {
	var b strings.Builder
	_ = Encode(&b, n)
	return b.String()
}

// Num formats a coordinate using the shortest representation that round
// trips, so 8 renders as "8" and 2.5 as "2.5".
func Num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
