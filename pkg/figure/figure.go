package figure

import (
	"github.com/genetracks/genetracks/pkg/errors"
	"github.com/genetracks/genetracks/pkg/svg"
)

const (
	DefaultWidth  = 1000 // canvas width used by New
	DefaultHeight = 200  // placeholder height, replaced on first render

	// Padding is the vertical gap added after every track.
	Padding = 3

	IntervalHeight = 16     // track height used by PushInterval
	IntervalColour = "grey" // bar colour used by PushInterval
)

// Figure is a whole track document.
// Height is derived: every render overwrites it with the measured height.
type Figure struct {
	Width  uint
	Height uint
	Tracks []Track
}

// New creates a figure with the default canvas size.
func New(tracks ...Track) *Figure {
	return &Figure{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Tracks: tracks,
	}
}

// IntervalTrack returns a single-bar track spanning [start, end).
// It fails with ErrCodeInvalidInterval when end is before start.
func IntervalTrack(start, end uint64, label string) (Track, error) {
	if end < start {
		return Track{}, errors.New(errors.ErrCodeInvalidInterval, "interval end %d is before start %d", end, start)
	}
	return Track{
		Height: IntervalHeight,
		Elems: []Element{{
			Style:  StyleBar,
			Label:  label,
			Start:  start,
			Length: end - start,
			Colour: IntervalColour,
		}},
	}, nil
}

// PushInterval appends a track holding one unlabeled grey bar spanning
// [start, end). The figure is left unchanged if end is before start.
func (f *Figure) PushInterval(start, end uint64) error {
	t, err := IntervalTrack(start, end, "")
	if err != nil {
		return err
	}
	f.Tracks = append(f.Tracks, t)
	return nil
}

// ToDrawing measures the figure, stores the measured height in f.Height and
// returns the complete drawing. The root declares a viewBox matching the
// canvas and lets width and height stretch independently.
func (f *Figure) ToDrawing() *svg.Node {
	l := f.Measure()
	f.Height = l.Height

	root := svg.New("svg",
		svg.A("xmlns", "http://www.w3.org/2000/svg"),
		svg.A("width", f.Width),
		svg.A("height", l.Height),
		svg.A("viewBox", "0 0 "+svg.Num(float64(f.Width))+" "+svg.Num(float64(l.Height))),
		svg.A("preserveAspectRatio", "none"),
	)
	root.Append(svg.New("defs"))

	for i, t := range f.Tracks {
		offset := float64(l.Offsets[i])
		if l.Blank {
			root.Append(svg.Group(0, offset))
			continue
		}
		root.Append(t.Render(offset, l.Scale))
	}
	return root
}
