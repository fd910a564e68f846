package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/genetracks/genetracks/pkg/errors"
	"github.com/genetracks/genetracks/pkg/figure"
)

// intervalCommand creates the interval command, which appends one grey
// interval track to a document.
func (c *CLI) intervalCommand() *cobra.Command {
	var (
		doc    string
		output string
		label  string
	)

	cmd := &cobra.Command{
		Use:   "interval <start> <end>",
		Short: "Append an interval track to a figure document",
		Long: `Append a track holding one grey bar spanning [start, end).

With --doc the track is appended to that document, which is rewritten in
place unless --output is given. Without --doc a new figure is started and
written to --output or stdout.`,
		Example: `  genetracks interval 100 150 --doc fig.json
  genetracks interval 0 2000 --label "region" -o new.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseInterval(args[0], args[1])
			if err != nil {
				return err
			}

			fig := figure.New()
			fig.Width = c.Config.Render.Width
			if doc != "" {
				if fig, err = readDocument(doc); err != nil {
					return err
				}
			}

			if label == "" {
				err = fig.PushInterval(start, end)
			} else {
				var t figure.Track
				if t, err = figure.IntervalTrack(start, end, label); err == nil {
					fig.Tracks = append(fig.Tracks, t)
				}
			}
			if err != nil {
				return err
			}

			dest := output
			switch {
			case dest == "" && doc != "" && doc != stdio:
				dest = doc
			case dest == "":
				dest = stdio
			}
			name := dest
			if dest == stdio {
				name = "stdout.json"
				uiOut = os.Stderr
			}
			data, err := encodeDocument(fig, name)
			if err != nil {
				return err
			}
			if err := writeOutput(dest, data); err != nil {
				return err
			}
			if dest != stdio {
				printSuccess("Added interval [%d, %d) as track %d", start, end, len(fig.Tracks)-1)
				printFile(dest)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "document to append to")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output document (default: --doc in place, or stdout)")
	cmd.Flags().StringVar(&label, "label", "", "bar label")

	return cmd
}

func parseInterval(a, b string) (start, end uint64, err error) {
	start, err = strconv.ParseUint(a, 10, 64)
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "start %q is not a non-negative integer", a)
	}
	end, err = strconv.ParseUint(b, 10, 64)
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "end %q is not a non-negative integer", b)
	}
	return start, end, nil
}
