// Package pipeline runs the figure -> drawing -> artifact pipeline with
// caching.
//
// The CLI and the HTTP server both go through a [Runner] so that format
// validation, cache keys and logging behave the same everywhere.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Render(ctx, fig, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	    Scale:   2,
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
//
// # Caching
//
// Artifacts are cached per format. The key combines a hash of the figure
// document (with the derived height cleared, so a figure hashes the same
// before and after its first render) with every option that changes the
// output bytes.
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/genetracks/genetracks/pkg/cache"
	"github.com/genetracks/genetracks/pkg/errors"
	"github.com/genetracks/genetracks/pkg/figure"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

const (
	// DefaultScale is the PNG scale used when Options.Scale is zero.
	DefaultScale = 1.0

	// DefaultTTL is how long rendered artifacts stay cached.
	DefaultTTL = 7 * 24 * time.Hour
)

// Options configures one pipeline run.
type Options struct {
	// Formats lists the artifacts to produce. Defaults to svg.
	Formats []string
	// Scale is the PNG pixel density. Ignored by other formats.
	Scale float64
	// Width overrides the figure's canvas width when non-zero.
	Width uint
	// Refresh skips cache reads; results are still written back.
	Refresh bool
	// TTL overrides DefaultTTL when positive.
	TTL time.Duration

	Logger *log.Logger
}

// ValidateAndSetDefaults fills unset fields and rejects unknown formats
// and out-of-range scales.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := errors.ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if err := errors.ValidateScale(o.Scale); err != nil {
		return err
	}
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	return nil
}

// ArtifactKeyOpts returns the cache key options for one format.
// Scale only participates for PNG so that svg and pdf entries are shared
// across scales.
func (o Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format, Width: o.Width}
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}

// Result holds the artifacts of one run.
type Result struct {
	// Artifacts maps format to bytes.
	Artifacts map[string][]byte
	// DocHash identifies the input document.
	DocHash string
	// Layout is the measurement of the figure as rendered.
	Layout figure.Layout
	Stats     Stats
	CacheHits map[string]bool
}

// Stats summarises a run.
type Stats struct {
	Tracks     int
	Elements   int
	RenderTime time.Duration
}
