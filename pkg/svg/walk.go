package svg

import (
	"fmt"
	"strconv"
	"strings"
)

// WalkFunc is called for every node with the translation accumulated from
// all enclosing groups, including the node's own transform.
type WalkFunc func(n *Node, dx, dy float64) error

// Walk visits n and its descendants in document order.
// Returning an error from fn stops the walk.
func Walk(n *Node, fn WalkFunc) error {
	return walk(n, 0, 0, fn)
}

func walk(n *Node, dx, dy float64, fn WalkFunc) error {
	if t, ok := n.Attr("transform"); ok {
		x, y, err := ParseTranslate(t)
		if err != nil {
			return err
		}
		dx, dy = dx+x, dy+y
	}
	if err := fn(n, dx, dy); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := walk(c, dx, dy, fn); err != nil {
			return err
		}
	}
	return nil
}

// ParseTranslate parses "translate(x y)" or "translate(x,y)".
func ParseTranslate(s string) (x, y float64, err error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "translate(") || !strings.HasSuffix(s, ")") {
		return 0, 0, fmt.Errorf("unsupported transform %q", s)
	}
	fields := strings.FieldsFunc(s[len("translate("):len(s)-1], func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(fields) == 0 || len(fields) > 2 {
		return 0, 0, fmt.Errorf("malformed transform %q", s)
	}
	if x, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return 0, 0, fmt.Errorf("transform %q: %w", s, err)
	}
	if len(fields) == 2 {
		if y, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return 0, 0, fmt.Errorf("transform %q: %w", s, err)
		}
	}
	return x, y, nil
}

// ParsePath parses path data made of absolute M and L commands into
// subpaths. Each M starts a new subpath.
func ParsePath(d string) ([][]Point, error) {
	var (
		paths [][]Point
		cur   []Point
	)
	for _, tok := range strings.Fields(d) {
		if tok == "" {
			continue
		}
		cmd := tok[0]
		if cmd != 'M' && cmd != 'L' {
			return nil, fmt.Errorf("unsupported path command %q", tok)
		}
		parts := strings.Split(tok[1:], ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed path segment %q", tok)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("path segment %q: %w", tok, err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("path segment %q: %w", tok, err)
		}
		if cmd == 'M' {
			if len(cur) > 0 {
				paths = append(paths, cur)
			}
			cur = nil
		} else if len(cur) == 0 {
			return nil, fmt.Errorf("path %q: L before M", d)
		}
		cur = append(cur, Point{X: x, Y: y})
	}
	if len(cur) > 0 {
		paths = append(paths, cur)
	}
	return paths, nil
}
