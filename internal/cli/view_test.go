package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/matzehuels/squaremap/pkg/pipeline"
	"github.com/matzehuels/squaremap/pkg/render/sink"
	"github.com/matzehuels/squaremap/pkg/treemap"
)

func newTestViewModel(t *testing.T) viewModel {
	t.Helper()
	zones := zone.New()
	t.Cleanup(zones.Close)

	items := []treemap.Item{
		{ID: "go", Text: "golang", Weight: 50, URL: "https://go.dev"},
		{ID: "rs", Text: "rust", Weight: 30},
		{ID: "zig", Text: "zig", Weight: 20},
	}
	m := newViewModel("langs.json", items, pipeline.DefaultOptions(), zones)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return next.(viewModel)
}

func update(t *testing.T, m viewModel, msg tea.Msg) (viewModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(viewModel), cmd
}

func TestViewModelLayout(t *testing.T) {
	m := newTestViewModel(t)

	if len(m.layout.Tiles) != 3 {
		t.Fatalf("tiles = %d, want 3", len(m.layout.Tiles))
	}
	if m.layout.Width != 60 || m.layout.Height != float64(m.mapRows()*2) {
		t.Errorf("canvas = %gx%g", m.layout.Width, m.layout.Height)
	}
	if m.layout.Inset != 0 {
		t.Errorf("inset = %g, want 0", m.layout.Inset)
	}

	view := m.View()
	for _, want := range []string{"langs.json", "3 of 3 items", "golang", "50.0%", "https://go.dev"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewModelKeys(t *testing.T) {
	m := newTestViewModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.selected != 1 {
		t.Errorf("right: selected = %d, want 1", m.selected)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.selected != 0 {
		t.Errorf("tab wraps: selected = %d, want 0", m.selected)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.selected != 2 {
		t.Errorf("left wraps: selected = %d, want 2", m.selected)
	}

	mode := m.layout.Mode
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	if m.layout.Mode == mode {
		t.Errorf("m did not toggle mode from %q", mode)
	}

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestViewModelMouse(t *testing.T) {
	m := newTestViewModel(t)
	grid := sink.Grid(m.layout, m.width, m.mapRows())

	// Bottom-right map cell.
	row, col := m.mapRows()-1, m.width-1
	want := grid[row][col]
	if want < 0 {
		t.Fatal("no tile under the bottom-right cell")
	}

	m, _ = update(t, m, tea.MouseMsg{X: col, Y: row + viewHeaderRows, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.selected != want {
		t.Errorf("selected = %d, want %d", m.selected, want)
	}

	// Clicks on the title bar select nothing.
	before := m.selected
	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.selected != before {
		t.Errorf("title click changed selection to %d", m.selected)
	}
}

func TestViewModelBeforeSize(t *testing.T) {
	zones := zone.New()
	defer zones.Close()

	m := newViewModel("x", nil, pipeline.DefaultOptions(), zones)
	if got := m.View(); got != "loading..." {
		t.Errorf("View() = %q", got)
	}
}
