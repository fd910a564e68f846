package figure

// Layout is the result of the measurement pass.
type Layout struct {
	// MaxExtent is the largest element end across all tracks.
	MaxExtent uint64
	// Scale is coordinate units per pixel: MaxExtent / Width.
	// It is zero when Blank is set.
	Scale float64
	// Height is the canvas height: the sum of track heights plus Padding
	// after each track.
	Height uint
	// Offsets holds the top of each track, in track order.
	Offsets []uint
	// Blank reports that there is no horizontal extent to scale against
	// (no element ends past 0, or the canvas has no width). Element geometry
	// is skipped for blank figures.
	Blank bool
}

// Measure runs the measurement pass without rendering.
func (f *Figure) Measure() Layout {
	l := Layout{Offsets: make([]uint, len(f.Tracks))}
	for i, t := range f.Tracks {
		l.Offsets[i] = l.Height
		l.Height += t.Height + Padding
		if ext := t.extent(); ext > l.MaxExtent {
			l.MaxExtent = ext
		}
	}

	if l.MaxExtent == 0 || f.Width == 0 {
		l.Blank = true
		return l
	}
	l.Scale = float64(l.MaxExtent) / float64(f.Width)
	return l
}
