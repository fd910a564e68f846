package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/genetracks/genetracks/pkg/cache"
	"github.com/genetracks/genetracks/pkg/errors"
	"github.com/genetracks/genetracks/pkg/figure"
	"github.com/genetracks/genetracks/pkg/io"
	"github.com/genetracks/genetracks/pkg/sheet"
)

// importCommand creates the import command, which turns a spreadsheet of
// intervals into a figure document with one track per row.
func (c *CLI) importCommand() *cobra.Command {
	var (
		sheetName string
		output    string
		width     uint
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "import <workbook.xlsx>",
		Short: "Build a figure document from a spreadsheet of intervals",
		Long: `Import reads rows of start, end and an optional label from columns A to C
of an Excel sheet. A non-numeric first row is treated as a header.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			if width == 0 {
				width = c.Config.Render.Width
			}

			fig, cached, err := c.importSheet(cmd, input, sheetName, noCache)
			if err != nil {
				return err
			}
			fig.Width = width

			if output == "" {
				output = strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
			}
			if output == stdio {
				uiOut = os.Stderr
			}
			data, err := encodeDocument(fig, output)
			if err != nil {
				return err
			}
			if err := writeOutput(output, data); err != nil {
				return err
			}

			st := fig.Stats()
			printSuccess("Imported %d intervals", len(fig.Tracks))
			if output != stdio {
				printFile(output)
			}
			printStats(st.Tracks, st.Elements, st.Height, cached)
			if output != stdio {
				printNextStep("Render it", appName+" render "+output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sheetName, "sheet", "", "sheet name (default: first sheet)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output document (.json or .yaml; default: <workbook>.json)")
	cmd.Flags().UintVar(&width, "width", 0, "canvas width (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the import cache")

	return cmd
}

// importSheet reads the workbook, reusing a cached import of the same file
// contents and sheet when available.
func (c *CLI) importSheet(cmd *cobra.Command, path, sheetName string, noCache bool) (*figure.Figure, bool, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, errors.Wrap(errors.ErrCodeFileNotFound, err, "workbook %s", path)
	}
	if err != nil {
		return nil, false, err
	}

	ch, err := c.newCache(cmd, noCache)
	if err != nil {
		return nil, false, err
	}
	defer ch.Close()

	keyer := cache.NewDefaultKeyer()
	if ns := c.Config.Cache.Namespace; ns != "" {
		keyer = cache.NewScopedKeyer(keyer, ns)
	}
	key := keyer.SheetKey(cache.Hash(data), sheetName)

	if doc, hit, err := ch.Get(ctx, key); err == nil && hit {
		if fig, err := io.Unmarshal(doc); err == nil {
			logger.Debug("import cache hit", "path", path)
			return fig, true, nil
		}
	}

	s := newSpinnerWithContext(ctx, "Reading "+filepath.Base(path)+"...")
	if isTerminal(os.Stderr) {
		s.out = os.Stderr
		s.Start()
		defer s.Stop()
	}
	fig, err := sheet.Import(path, sheetName, 0)
	if err != nil {
		return nil, false, err
	}

	if doc, err := io.Marshal(fig); err == nil {
		if err := ch.Set(ctx, key, doc, c.Config.Cache.TTL); err != nil {
			logger.Warn("cache write failed", "error", err)
		}
	}
	return fig, false, nil
}
