package sink

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/squaremap/pkg/treemap"
)

// TerminalOption configures RenderTerminal.
type TerminalOption func(*terminalRenderer)

type terminalRenderer struct {
	cols, rows int
	selected   int
	border     bool
}

// WithSize sets the grid size in character cells (default 80x24).
func WithSize(cols, rows int) TerminalOption {
	return func(r *terminalRenderer) { r.cols, r.rows = cols, rows }
}

// WithSelected highlights the tile at index i of l.Tiles.
func WithSelected(i int) TerminalOption { return func(r *terminalRenderer) { r.selected = i } }

// WithBorder frames the grid with a rounded border.
func WithBorder() TerminalOption { return func(r *terminalRenderer) { r.border = true } }

// Grid maps each character cell to the index into l.Tiles it shows, or -1.
// Cells sample the layout at their centres, so the layout may use any
// coordinate system.
func Grid(l treemap.Layout, cols, rows int) [][]int {
	grid := make([][]int, rows)
	for r := range grid {
		grid[r] = make([]int, cols)
		y := (float64(r) + 0.5) * l.Height / float64(rows)
		for c := range grid[r] {
			x := (float64(c) + 0.5) * l.Width / float64(cols)
			grid[r][c] = l.TileAt(x, y)
		}
	}
	return grid
}

// RenderTerminal draws the layout as coloured character cells. Each tile
// shows its label on its first row and its secondary text on the second,
// truncated to the tile's width in cells.
func RenderTerminal(l treemap.Layout, opts ...TerminalOption) string {
	r := terminalRenderer{cols: 80, rows: 24, selected: -1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.cols <= 0 || r.rows <= 0 {
		return ""
	}

	grid := Grid(l, r.cols, r.rows)
	text := make([][]string, r.rows)
	for i := range text {
		text[i] = make([]string, r.cols)
		for j := range text[i] {
			text[i][j] = " "
		}
	}
	for i, box := range tileBoxes(grid, len(l.Tiles)) {
		if box.empty() || l.Tiles[i].Item == nil {
			continue
		}
		it := l.Tiles[i].Item
		writeCells(text[box.r0], box.c0, box.c1, it.Text)
		if box.r1 > box.r0 && it.Secondary != "" {
			writeCells(text[box.r0+1], box.c0, box.c1, it.Secondary)
		}
	}

	var sb strings.Builder
	for row := range grid {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < r.cols; {
			idx := grid[row][c]
			end := c
			for end < r.cols && grid[row][end] == idx {
				end++
			}
			sb.WriteString(r.cellStyle(l, idx).Render(strings.Join(text[row][c:end], "")))
			c = end
		}
	}

	out := sb.String()
	if r.border {
		out = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Render(out)
	}
	return out
}

func (r terminalRenderer) cellStyle(l treemap.Layout, idx int) lipgloss.Style {
	st := lipgloss.NewStyle()
	if idx < 0 {
		return st
	}
	c := l.Tiles[idx].Color
	st = st.Background(lipgloss.Color(c.Hex())).Foreground(lipgloss.Color(c.Text()))
	if idx == r.selected {
		st = st.Bold(true).Background(lipgloss.Color("#fafafa")).Foreground(lipgloss.Color("#111111"))
	}
	return st
}

// cellBox is the cell-space bounding box of one tile.
type cellBox struct{ r0, c0, r1, c1 int }

func (b cellBox) empty() bool { return b.r1 < b.r0 }

func tileBoxes(grid [][]int, n int) []cellBox {
	boxes := make([]cellBox, n)
	for i := range boxes {
		boxes[i] = cellBox{r0: 1 << 30, c0: 1 << 30, r1: -1, c1: -1}
	}
	for r, row := range grid {
		for c, idx := range row {
			if idx < 0 {
				continue
			}
			b := &boxes[idx]
			b.r0, b.c0 = min(b.r0, r), min(b.c0, c)
			b.r1, b.c1 = max(b.r1, r), max(b.c1, c)
		}
	}
	return boxes
}

// writeCells writes s into row[c0..c1] with one cell of padding on the left
// when there is room. Wide runes occupy two cells; the second holds "".
func writeCells(row []string, c0, c1 int, s string) {
	width := c1 - c0 + 1
	if width >= 3 {
		c0++
		width -= 2
	}
	s = runewidth.Truncate(s, width, "…")
	c := c0
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if c+w-1 > c1 {
			break
		}
		row[c] = string(ch)
		for k := 1; k < w; k++ {
			row[c+k] = ""
		}
		c += w
	}
}
