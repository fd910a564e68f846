package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// inspectCommand creates the inspect command. On a terminal it opens an
// interactive track browser; otherwise it prints every track and its
// elements.
func (c *CLI) inspectCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "inspect <document>",
		Short: "Browse the tracks and elements of a figure document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fig, err := readDocument(args[0])
			if err != nil {
				return err
			}

			if plain || !isTerminal(os.Stdout) {
				l := fig.Measure()
				fmt.Fprintln(uiOut, StyleTitle.Render(args[0]))
				for i, t := range fig.Tracks {
					fmt.Fprintln(uiOut, trackLine(i, t, l.Offsets[i]))
					if len(t.Elems) > 0 {
						fmt.Fprintln(uiOut, elementTable(t))
					}
				}
				return nil
			}

			p := tea.NewProgram(NewTrackListModel(fig), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print instead of opening the interactive browser")
	return cmd
}
