package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/matzehuels/squaremap/pkg/dataset"
	"github.com/matzehuels/squaremap/pkg/pipeline"
	"github.com/matzehuels/squaremap/pkg/render/sink"
	"github.com/matzehuels/squaremap/pkg/treemap"
)

// viewCommand creates the interactive terminal viewer.
func (c *CLI) viewCommand() *cobra.Command {
	var lf layoutFlags

	cmd := &cobra.Command{
		Use:   "view [items]",
		Short: "Explore an items file as an interactive terminal treemap",
		Long: `Explore an items file as an interactive terminal treemap.

The treemap fills the terminal and is laid out again on resize.

Keys:
  ←/→, tab, shift+tab   move the selection
  m                     toggle dark/light colours
  q, esc, ctrl+c        quit

Hovering or clicking a tile or a legend entry selects it. The canvas
follows the terminal size, so --width and --height are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			lf.apply(cmd, &opts)
			if err := opts.ValidateForLayout(); err != nil {
				return err
			}
			return c.runView(cmd.Context(), args[0], opts)
		},
	}
	lf.register(cmd)

	return cmd
}

func (c *CLI) runView(ctx context.Context, input string, opts pipeline.Options) error {
	items, err := pipeline.LoadItems(input)
	if err != nil {
		return fmt.Errorf("load items %s: %w", input, err)
	}

	zones := zone.New()
	defer zones.Close()

	m := newViewModel(filepath.Base(input), items, opts, zones)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// =============================================================================
// viewModel - Interactive treemap
// =============================================================================

// Rows taken by the title bar, detail line, legend and help line.
const (
	viewHeaderRows = 1
	viewFooterRows = 3
)

type viewModel struct {
	title string
	items []treemap.Item
	opts  pipeline.Options
	zones *zone.Manager

	width, height int
	layout        treemap.Layout
	selected      int
}

func newViewModel(title string, items []treemap.Item, opts pipeline.Options, zones *zone.Manager) viewModel {
	return viewModel{title: title, items: items, opts: opts, zones: zones}
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m = m.relayout()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "down", "j", "tab":
			m = m.step(1)
		case "left", "h", "up", "k", "shift+tab":
			m = m.step(-1)
		case "m":
			if m.opts.Mode == string(treemap.ModeLight) {
				m.opts.Mode = string(treemap.ModeDark)
			} else {
				m.opts.Mode = string(treemap.ModeLight)
			}
			m = m.relayout()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion || (msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft) {
			if i := m.hit(msg); i >= 0 {
				m.selected = i
			}
		}
	}
	return m, nil
}

// mapRows is the number of terminal rows given to the treemap.
func (m viewModel) mapRows() int {
	return max(1, m.height-viewHeaderRows-viewFooterRows)
}

// relayout builds the layout for the current terminal size. Terminal cells
// are about twice as tall as wide, so the canvas uses two units per row.
func (m viewModel) relayout() viewModel {
	if m.width <= 0 || m.height <= 0 {
		return m
	}
	m.layout = treemap.Build(m.items, float64(m.width), float64(m.mapRows()*2),
		treemap.WithMaxDisplay(m.opts.MaxDisplay),
		treemap.WithMode(treemap.Mode(m.opts.Mode)),
		treemap.WithInset(0),
	)
	if m.selected >= len(m.layout.Tiles) {
		m.selected = 0
	}
	return m
}

func (m viewModel) step(d int) viewModel {
	if n := len(m.layout.Tiles); n > 0 {
		m.selected = ((m.selected+d)%n + n) % n
	}
	return m
}

// hit returns the tile under the mouse, via the legend zones or the map
// grid, or -1.
func (m viewModel) hit(msg tea.MouseMsg) int {
	for i := range m.layout.Tiles {
		if z := m.zones.Get(legendZoneID(i)); z != nil && z.InBounds(msg) {
			return i
		}
	}
	row := msg.Y - viewHeaderRows
	if row < 0 || row >= m.mapRows() || msg.X < 0 || msg.X >= m.width {
		return -1
	}
	grid := sink.Grid(m.layout, m.width, m.mapRows())
	return grid[row][msg.X]
}

func legendZoneID(i int) string { return fmt.Sprintf("legend-%d", i) }

func (m viewModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.titleBar())
	b.WriteString("\n")
	b.WriteString(sink.RenderTerminal(m.layout, sink.WithSize(m.width, m.mapRows()), sink.WithSelected(m.selected)))
	b.WriteString("\n")
	b.WriteString(m.detail())
	b.WriteString("\n")
	b.WriteString(m.legend())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(runewidth.Truncate("←/→ select · m mode · q quit", m.width, "…")))

	return m.zones.Scan(b.String())
}

func (m viewModel) titleBar() string {
	shown := len(m.layout.Tiles)
	s := fmt.Sprintf("%s · %d of %d items · %s", m.title, shown, len(m.items), m.opts.Mode)
	return StyleTitle.Render(runewidth.Truncate(s, m.width, "…"))
}

// detail describes the selected tile.
func (m viewModel) detail() string {
	if m.selected < 0 || m.selected >= len(m.layout.Tiles) {
		return ""
	}
	t := m.layout.Tiles[m.selected]
	if t.Item == nil {
		return ""
	}

	var total float64
	for _, tt := range m.layout.Tiles {
		if tt.Item != nil {
			total += tt.Item.Weight
		}
	}
	share := 0.0
	if total > 0 {
		share = t.Item.Weight / total * 100
	}

	s := fmt.Sprintf("#%d %s · %s · %.1f%%", t.Index+1, t.Item.Text, dataset.FormatWeight(t.Item.Weight), share)
	s = runewidth.Truncate(s, m.width, "…")
	if url := t.Item.URL; url != "" && runewidth.StringWidth(s)+3+runewidth.StringWidth(url) <= m.width {
		return StyleValue.Render(s) + StyleDim.Render(" · ") + StyleLink.Render(url)
	}
	return StyleValue.Render(s)
}

// legend lists as many tiles as fit on one line, each a mouse zone.
func (m viewModel) legend() string {
	var (
		b    strings.Builder
		used int
	)
	for i, t := range m.layout.Tiles {
		if t.Item == nil {
			continue
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color.Hex())).Render("■")
		label := runewidth.Truncate(t.Item.Text, 16, "…")
		w := 2 + runewidth.StringWidth(label) + 2
		if used+w > m.width {
			break
		}
		style := StyleDim
		if i == m.selected {
			style = StyleHighlight
		}
		b.WriteString(m.zones.Mark(legendZoneID(i), swatch+" "+style.Render(label)))
		b.WriteString("  ")
		used += w
	}
	return b.String()
}
