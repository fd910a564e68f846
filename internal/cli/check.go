package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/genetracks/genetracks/pkg/errors"
	"github.com/genetracks/genetracks/pkg/figure"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <document>...",
		Short: "Report likely mistakes in figure documents",
		Long: `Check parses each document and reports findings. Warnings (zero-height
tracks, zero-length elements, unknown styles) still render; invalid findings
do not render meaningfully. The command fails if any document is invalid,
or with --strict if any has warnings.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, path := range args {
				ok, err := checkDocument(path, strict)
				if err != nil {
					printError("%s: %s", path, errors.UserMessage(err))
					failed++
					continue
				}
				if !ok {
					failed++
				}
			}
			if failed > 0 {
				return errors.New(errors.ErrCodeInvalidFigure, "%d of %d documents failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as failures")
	return cmd
}

// checkDocument prints the findings for one document and reports whether
// it passed.
func checkDocument(path string, strict bool) (bool, error) {
	fig, err := readDocument(path)
	if err != nil {
		return false, err
	}
	problems := fig.Check()
	st := fig.Stats()

	ok := true
	for _, p := range problems {
		if p.Severity == figure.Invalid || strict {
			ok = false
		}
	}

	if ok {
		printSuccess("%s", path)
	} else {
		printError("%s", path)
	}
	for _, p := range problems {
		style := StyleWarning
		if p.Severity == figure.Invalid {
			style = StyleError
		}
		printDetail("%s", style.Render(p.String()))
	}
	printKeyValue("tracks", fmt.Sprint(st.Tracks))
	printKeyValue("elements", fmt.Sprint(st.Elements))
	printKeyValue("extent", fmt.Sprint(st.MaxExtent))
	printKeyValue("height", fmt.Sprintf("%dpx", st.Height))
	printKeyValue("styles", styleCounts(st.ByStyle))
	return ok, nil
}

// styleCounts formats per-style counts in the canonical style order.
func styleCounts(by map[figure.Style]int) string {
	styles := make([]figure.Style, 0, len(by))
	for s := range by {
		styles = append(styles, s)
	}
	sort.Slice(styles, func(i, j int) bool { return styleRank(styles[i]) < styleRank(styles[j]) })

	out := ""
	for i, s := range styles {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s %d", s, by[s])
	}
	if out == "" {
		return "none"
	}
	return out
}

func styleRank(s figure.Style) int {
	for i, known := range figure.Styles {
		if s == known {
			return i
		}
	}
	return len(figure.Styles)
}
