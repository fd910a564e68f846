package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/genetracks/genetracks/pkg/figure"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	headerStyle       = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// TrackListModel - Interactive track browser
// =============================================================================

// TrackListModel is the bubbletea model for browsing a figure's tracks.
// Enter toggles the element table of the track under the cursor.
type TrackListModel struct {
	Figure   *figure.Figure
	Layout   figure.Layout
	Cursor   int
	Offset   int
	Height   int
	Expanded bool
}

// NewTrackListModel creates a browser for fig.
func NewTrackListModel(fig *figure.Figure) TrackListModel {
	return TrackListModel{
		Figure: fig,
		Layout: fig.Measure(),
		Height: 15,
	}
}

func (m TrackListModel) Init() tea.Cmd {
	return nil
}

func (m TrackListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Figure.Tracks)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if n := len(m.Figure.Tracks); n > 0 {
				m.Cursor = n - 1
				m.Offset = max(0, n-m.Height)
			}
		case "enter", " ":
			m.Expanded = !m.Expanded
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m TrackListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Tracks"))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  width %d · height %d · extent %d",
		m.Figure.Width, m.Layout.Height, m.Layout.MaxExtent)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ elements  q quit"))
	b.WriteString("\n\n")

	if len(m.Figure.Tracks) == 0 {
		b.WriteString(listDimStyle.Render("  (no tracks)"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Figure.Tracks))
	for i := m.Offset; i < end; i++ {
		line := trackLine(i, m.Figure.Tracks[i], m.Layout.Offsets[i])
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.Expanded {
		b.WriteString("\n")
		b.WriteString(elementTable(m.Figure.Tracks[m.Cursor]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("  [") + StyleNumber.Render(fmt.Sprintf("%d/%d", m.Cursor+1, len(m.Figure.Tracks))) + listDimStyle.Render("]"))
	return b.String()
}

// trackLine summarises one track: index, vertical offset, height, element
// count and the covered coordinate range.
func trackLine(i int, t figure.Track, offset uint) string {
	lo, hi := trackRange(t)
	span := "—"
	if len(t.Elems) > 0 {
		span = fmt.Sprintf("[%d, %d)", lo, hi)
	}
	return fmt.Sprintf("%3d  y=%-5d h=%-4d %3d elems  %s", i, offset, t.Height, len(t.Elems), span)
}

func trackRange(t figure.Track) (lo, hi uint64) {
	for i, e := range t.Elems {
		if i == 0 || e.Start < lo {
			lo = e.Start
		}
		if end := e.End(); end > hi {
			hi = end
		}
	}
	return lo, hi
}

// elementTable renders the elements of t as a bordered table.
func elementTable(t figure.Track) string {
	rows := make([][]string, 0, len(t.Elems))
	for i, e := range t.Elems {
		rows = append(rows, []string{
			fmt.Sprint(i),
			e.Style.String(),
			e.Label,
			fmt.Sprint(e.Start),
			fmt.Sprint(e.End()),
			e.Colour,
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Style", "Label", "Start", "End", "Colour").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 1 && row >= 0 && row < len(t.Elems) && !t.Elems[row].Style.Known() && t.Elems[row].Style != "" {
				return lipgloss.NewStyle().Foreground(colorYellow)
			}
			return lipgloss.NewStyle()
		})
	return tbl.Render()
}
