package figure

import (
	"fmt"
	"math"

	"github.com/genetracks/genetracks/pkg/errors"
)

// Severity grades a [Problem].
type Severity int

const (
	// Warning marks something that renders, but probably not as intended.
	Warning Severity = iota
	// Invalid marks something that cannot render meaningfully.
	Invalid
)

func (s Severity) String() string {
	if s == Invalid {
		return "invalid"
	}
	return "warning"
}

// Problem is one finding of [Figure.Check]. Element is -1 for track-level
// findings and Track is -1 for figure-level ones.
type Problem struct {
	Track    int
	Element  int
	Severity Severity
	Message  string
}

func (p Problem) String() string {
	switch {
	case p.Track < 0:
		return fmt.Sprintf("%s: %s", p.Severity, p.Message)
	case p.Element < 0:
		return fmt.Sprintf("%s: track %d: %s", p.Severity, p.Track, p.Message)
	default:
		return fmt.Sprintf("%s: track %d element %d: %s", p.Severity, p.Track, p.Element, p.Message)
	}
}

// Check inspects the document. Rendering never depends on it: every figure
// renders, Check only reports what is likely a mistake.
func (f *Figure) Check() []Problem {
	var out []Problem
	if f.Width == 0 {
		out = append(out, Problem{Track: -1, Element: -1, Severity: Invalid, Message: "canvas width is 0"})
	}
	for i, t := range f.Tracks {
		if t.Height == 0 {
			out = append(out, Problem{Track: i, Element: -1, Severity: Warning, Message: "track height is 0"})
		}
		for j, e := range t.Elems {
			if e.Style != "" && !e.Style.Known() {
				out = append(out, Problem{Track: i, Element: j, Severity: Warning,
					Message: fmt.Sprintf("unknown style %q drawn as %s", string(e.Style), StyleRect)})
			}
			if e.Length == 0 {
				out = append(out, Problem{Track: i, Element: j, Severity: Warning, Message: "element has zero length"})
			}
			if e.Length > math.MaxUint64-e.Start {
				out = append(out, Problem{Track: i, Element: j, Severity: Invalid, Message: "start+length overflows"})
			}
		}
	}
	return out
}

// Validate returns an ErrCodeInvalidFigure error describing the first
// invalid problem found by [Figure.Check], or nil.
func (f *Figure) Validate() error {
	for _, p := range f.Check() {
		if p.Severity == Invalid {
			return errors.New(errors.ErrCodeInvalidFigure, "%s", p)
		}
	}
	return nil
}

// Stats summarises a figure.
type Stats struct {
	Tracks    int
	Elements  int
	MaxExtent uint64
	Height    uint
	ByStyle   map[Style]int
}

// Stats counts tracks and elements. Elements with an empty or unknown tag
// are counted under [StyleRect], matching how they render.
func (f *Figure) Stats() Stats {
	l := f.Measure()
	s := Stats{
		Tracks:    len(f.Tracks),
		MaxExtent: l.MaxExtent,
		Height:    l.Height,
		ByStyle:   make(map[Style]int),
	}
	for _, t := range f.Tracks {
		s.Elements += len(t.Elems)
		for _, e := range t.Elems {
			style := e.Style
			if !style.Known() {
				style = StyleRect
			}
			s.ByStyle[style]++
		}
	}
	return s
}
