package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/genetracks/genetracks/pkg/errors"
	"github.com/genetracks/genetracks/pkg/figure"
	"github.com/genetracks/genetracks/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // output file (single format) or base path (multiple)
	formats string  // comma-separated formats
	scale   float64 // PNG pixel density
	width   uint    // canvas width override
	noCache bool
	refresh bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Render a figure document to SVG, PNG, PDF or JSON",
		Long: `Render a figure document (JSON or YAML; "-" reads JSON from stdin).

With one format, --output names the file ("-" writes to stdout). With
several formats, --output is a base path and each format gets its own
extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("scale") {
				if err := errors.ValidateScale(opts.scale); err != nil {
					return err
				}
			} else {
				opts.scale = c.Config.Render.Scale
			}
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg, png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG pixel density")
	cmd.Flags().UintVar(&opts.width, "width", 0, "override the document's canvas width")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts and re-render")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	formats := c.parseFormats(opts.formats)
	single := len(formats) == 1
	if opts.output == stdio {
		if !single {
			return fmt.Errorf("--output - needs exactly one format, got %d", len(formats))
		}
		uiOut = os.Stderr
	}

	fig, err := readDocument(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded document", "path", input, "tracks", len(fig.Tracks))

	runner, err := c.newRunner(cmd, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := c.renderWithSpinner(ctx, runner, fig, pipeline.Options{
		Formats: formats,
		Scale:   opts.scale,
		Width:   opts.width,
		Refresh: opts.refresh,
		TTL:     c.Config.Cache.TTL,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d tracks", res.Stats.Tracks))

	allCached := true
	for _, format := range formats {
		path := outputPath(opts.output, input, format, single)
		if err := writeOutput(path, res.Artifacts[format]); err != nil {
			return err
		}
		if path != stdio {
			printFile(path)
		}
		allCached = allCached && res.CacheHits[format]
	}
	printStats(res.Stats.Tracks, res.Stats.Elements, res.Layout.Height, allCached)
	if res.Layout.Blank && len(fig.Tracks) > 0 {
		printWarning("figure has no horizontal extent; elements were not drawn")
	}
	return nil
}

// renderWithSpinner shows a spinner on interactive terminals while the
// pipeline runs.
func (c *CLI) renderWithSpinner(ctx context.Context, runner *pipeline.Runner, fig *figure.Figure, opts pipeline.Options) (*pipeline.Result, error) {
	if !isTerminal(os.Stderr) {
		return runner.Render(ctx, fig, opts)
	}
	s := newSpinnerWithContext(ctx, "Rendering...")
	s.out = os.Stderr
	s.Start()
	res, err := runner.Render(ctx, fig, opts)
	if err != nil {
		s.StopWithError("Render failed")
		return nil, err
	}
	s.Stop()
	return res, nil
}
