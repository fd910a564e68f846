package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/genetracks/genetracks/pkg/figure"
)

func press(m TrackListModel, keys ...string) TrackListModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(TrackListModel)
	}
	return m
}

func manyTracks(n int) *figure.Figure {
	fig := figure.New()
	for i := 0; i < n; i++ {
		_ = fig.PushInterval(uint64(i*10), uint64(i*10+5))
	}
	return fig
}

func TestTrackListNavigation(t *testing.T) {
	m := NewTrackListModel(sampleFigure())

	m = press(m, "down")
	if m.Cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.Cursor)
	}
	m = press(m, "down", "j")
	if m.Cursor != 1 {
		t.Errorf("cursor moved past last track: %d", m.Cursor)
	}
	m = press(m, "k", "up")
	if m.Cursor != 0 {
		t.Errorf("cursor moved before first track: %d", m.Cursor)
	}
}

func TestTrackListScrolls(t *testing.T) {
	m := NewTrackListModel(manyTracks(30))
	m.Height = 5

	for i := 0; i < 7; i++ {
		m = press(m, "down")
	}
	if m.Cursor != 7 || m.Offset != 3 {
		t.Errorf("cursor, offset = %d, %d; want 7, 3", m.Cursor, m.Offset)
	}

	m = press(m, "G")
	if m.Cursor != 29 || m.Offset != 25 {
		t.Errorf("after G: cursor, offset = %d, %d; want 29, 25", m.Cursor, m.Offset)
	}
	m = press(m, "g")
	if m.Cursor != 0 || m.Offset != 0 {
		t.Errorf("after g: cursor, offset = %d, %d", m.Cursor, m.Offset)
	}
}

func TestTrackListExpand(t *testing.T) {
	m := NewTrackListModel(sampleFigure())
	if strings.Contains(m.View(), "steelblue") {
		t.Error("element table shown before expanding")
	}

	m = press(m, "enter")
	if !m.Expanded {
		t.Fatal("enter did not expand")
	}
	view := m.View()
	for _, want := range []string{"exon", "steelblue", "Style"} {
		if !strings.Contains(view, want) {
			t.Errorf("expanded view missing %q", want)
		}
	}
}

func TestTrackListQuit(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd := NewTrackListModel(sampleFigure()).Update(msg)
		if cmd == nil {
			t.Errorf("%s: no command returned", k)
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", k)
		}
	}
}

func TestTrackListEmpty(t *testing.T) {
	m := NewTrackListModel(figure.New())
	m = press(m, "down", "G", "enter")
	if !strings.Contains(m.View(), "no tracks") {
		t.Errorf("empty view = %q", m.View())
	}
}

func TestTrackLine(t *testing.T) {
	fig := sampleFigure()
	got := trackLine(1, fig.Tracks[1], 19)
	for _, want := range []string{"y=19", "h=10", "1 elems", "[50, 300)"} {
		if !strings.Contains(got, want) {
			t.Errorf("trackLine = %q, missing %q", got, want)
		}
	}
	if got := trackLine(0, figure.Track{Height: 4}, 0); !strings.Contains(got, "—") {
		t.Errorf("empty track line = %q", got)
	}
}
