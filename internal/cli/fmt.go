package cli

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/genetracks/genetracks/pkg/io"
)

// fmtCommand creates the fmt command, which rewrites a document in
// canonical form: two-space indent and fixed field order.
func (c *CLI) fmtCommand() *cobra.Command {
	var (
		to    string
		write bool
		check bool
	)

	cmd := &cobra.Command{
		Use:   "fmt <document>",
		Short: "Rewrite a figure document in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			if write && input == stdio {
				return fmt.Errorf("--write cannot rewrite stdin")
			}
			orig, err := readRaw(input)
			if err != nil {
				return err
			}
			name := input
			if input == stdio {
				name = "stdin.json"
			}
			fig, err := io.Read(bytes.NewReader(orig), name)
			if err != nil {
				return err
			}

			switch to {
			case "":
			case "json", "yaml":
				if ext := "." + to; filepath.Ext(name) != ext && !(to == "yaml" && filepath.Ext(name) == ".yml") {
					name = "out" + ext
				}
			default:
				return fmt.Errorf("--to must be json or yaml, got %q", to)
			}
			if write && name != input && input != stdio {
				return fmt.Errorf("--write cannot change the document format; use --to without --write")
			}
			data, err := encodeDocument(fig, name)
			if err != nil {
				return err
			}

			if check {
				if !bytes.Equal(orig, data) {
					return fmt.Errorf("%s is not formatted", input)
				}
				return nil
			}
			if write {
				if err := writeOutput(input, data); err != nil {
					return err
				}
				printSuccess("Formatted %s", input)
				return nil
			}
			return writeOutput(stdio, data)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "output codec: json or yaml (default: same as input)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place")
	cmd.Flags().BoolVar(&check, "check", false, "fail if the file is not already formatted")

	return cmd
}
