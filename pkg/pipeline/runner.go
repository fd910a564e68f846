package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/genetracks/genetracks/pkg/cache"
	"github.com/genetracks/genetracks/pkg/errors"
	"github.com/genetracks/genetracks/pkg/figure"
	"github.com/genetracks/genetracks/pkg/io"
	"github.com/genetracks/genetracks/pkg/observability"
	"github.com/genetracks/genetracks/pkg/render"
	"github.com/genetracks/genetracks/pkg/svg"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner holds no per-run state, so one Runner can serve concurrent
// requests as long as each passes its own figure.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Render produces every requested artifact for fig. Like
// Figure.ToDrawing, it stores the measured height in fig.
func (r *Runner) Render(ctx context.Context, fig *figure.Figure, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}
	if opts.Width > 0 {
		fig.Width = opts.Width
	}

	docHash, err := DocHash(fig)
	if err != nil {
		return nil, err
	}
	st := fig.Stats()
	result := &Result{
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		CacheHits: make(map[string]bool, len(opts.Formats)),
		DocHash:   docHash,
		Layout:    fig.Measure(),
		Stats:     Stats{Tracks: st.Tracks, Elements: st.Elements},
	}
	fig.Height = result.Layout.Height

	start := time.Now()
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, opts.Formats, st.Tracks)
	if err := r.renderFormats(ctx, fig, docHash, opts, result, logger); err != nil {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
		return nil, err
	}
	result.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, nil)

	logger.Debug("rendered figure",
		"tracks", result.Stats.Tracks,
		"elements", result.Stats.Elements,
		"height", result.Layout.Height,
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderFormats fills result with one artifact per format, serving and
// storing cache entries. The drawing is built at most once, on the first miss.
func (r *Runner) renderFormats(ctx context.Context, fig *figure.Figure, docHash string, opts Options, result *Result, logger *log.Logger) error {
	cacheHooks := observability.Cache()
	var root *svg.Node
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return err
		}
		key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))

		if !opts.Refresh {
			data, hit, err := r.Cache.Get(ctx, key)
			switch {
			case err != nil:
				logger.Warn("cache read failed", "format", format, "error", err)
			case hit:
				cacheHooks.OnCacheHit(ctx, format)
				result.Artifacts[format] = data
				result.CacheHits[format] = true
				continue
			default:
				cacheHooks.OnCacheMiss(ctx, format)
			}
		}

		if root == nil {
			root = fig.ToDrawing()
		}
		data, err := Artifact(fig, root, format, opts.Scale)
		if err != nil {
			return fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, opts.TTL); err != nil {
			logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, format, len(data))
	}
	return nil
}

// Artifact serialises one format. root must be fig's drawing.
func Artifact(fig *figure.Figure, root *svg.Node, format string, scale float64) ([]byte, error) {
	switch format {
	case FormatSVG:
		return render.SVG(root), nil
	case FormatPNG:
		return render.PNG(root, scale)
	case FormatPDF:
		return render.PDF(root)
	case FormatJSON:
		return io.Marshal(fig)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
}

// DocHash hashes the document form of fig, ignoring the derived height.
func DocHash(fig *figure.Figure) (string, error) {
	c := *fig
	c.Height = 0
	data, err := io.Marshal(&c)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "serialize figure for cache key")
	}
	return cache.Hash(data), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
