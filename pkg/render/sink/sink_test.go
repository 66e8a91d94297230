package sink

import (
	"bytes"
	"encoding/xml"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/squaremap/pkg/dataset"
	"github.com/matzehuels/squaremap/pkg/render/styles"
	"github.com/matzehuels/squaremap/pkg/treemap"
)

func sampleLayout(mode treemap.Mode) treemap.Layout {
	return treemap.Build([]treemap.Item{
		{ID: "go", Text: "golang tutorial", Secondary: "50", Weight: 50, URL: "https://go.dev"},
		{ID: "rs", Text: "rust tutorial", Secondary: "30", Weight: 30},
		{ID: "zig", Text: "zig & friends", Secondary: "20", Weight: 20},
	}, 300, 200, treemap.WithMode(mode))
}

func TestRenderSVGWellFormed(t *testing.T) {
	svg := RenderSVG(sampleLayout(treemap.ModeDark), WithLinks(), WithStyle(styles.Rounded{}))

	dec := xml.NewDecoder(bytes.NewReader(svg))
	for {
		_, err := dec.Token()
		if err != nil {
			if err != io.EOF {
				t.Fatalf("invalid XML: %v\n%s", err, svg)
			}
			break
		}
	}

	out := string(svg)
	for _, want := range []string{
		`viewBox="0 0 300.0 200.0"`,
		`fill="#16161d"`,
		`id="tile-0"`, `id="tile-1"`, `id="tile-2"`,
		`<a href="https://go.dev" target="_blank">`,
		`zig &amp; friends`,
		`<filter id="tile-shadow"`,
		`<script`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestRenderSVGOptions(t *testing.T) {
	out := string(RenderSVG(sampleLayout(treemap.ModeLight), WithoutInteraction()))
	if strings.Contains(out, "<script") || strings.Contains(out, "<a href") {
		t.Error("interaction or links rendered without being requested")
	}
	if !strings.Contains(out, `fill="#f7f7f5"`) {
		t.Error("light background missing")
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	out := string(RenderSVG(treemap.Build(nil, 100, 100)))
	if strings.Contains(out, `class="tile"`) {
		t.Error("empty layout should have no tiles")
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("SVG not closed")
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(sampleLayout(treemap.ModeDark), WithScale(1.5), WithPNGStyle(styles.Rounded{}))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 450 || b.Dy() != 300 {
		t.Errorf("size = %dx%d, want 450x300", b.Dx(), b.Dy())
	}

	// Centre of the first tile carries its fill colour or label ink, never
	// the background.
	r, g, b, _ := img.At(10, 150).RGBA()
	if r>>8 == 0x16 && g>>8 == 0x16 && b>>8 == 0x1d {
		t.Error("tile area painted with background colour")
	}
}

func TestRenderPNGErrors(t *testing.T) {
	if _, err := RenderPNG(treemap.Layout{}); err == nil {
		t.Error("expected error for empty canvas")
	}
	l := treemap.Build(nil, 10000, 10000)
	if _, err := RenderPNG(l, WithScale(4)); err == nil {
		t.Error("expected error for oversized raster")
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(sampleLayout(treemap.ModeDark))
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	dl, err := dataset.UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout: %v", err)
	}
	if len(dl.Tiles) != 3 || dl.Tiles[0].ID != "go" || dl.Mode != "dark" {
		t.Errorf("decoded = %+v", dl)
	}
}

func TestGrid(t *testing.T) {
	l := treemap.Build([]treemap.Item{{ID: "a", Weight: 1}, {ID: "b", Weight: 1}}, 100, 50, treemap.WithInset(0))
	grid := Grid(l, 10, 4)
	if grid[0][0] != 0 || grid[3][4] != 0 || grid[0][5] != 1 || grid[3][9] != 1 {
		t.Errorf("grid = %v", grid)
	}
}

func TestRenderTerminal(t *testing.T) {
	l := treemap.Build([]treemap.Item{
		{ID: "a", Text: "alpha", Secondary: "10", Weight: 1},
		{ID: "b", Text: "beta", Secondary: "10", Weight: 1},
	}, 40, 20, treemap.WithInset(0))

	out := RenderTerminal(l, WithSize(40, 10), WithSelected(1))
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d rows, want 10", len(lines))
	}
	if !strings.Contains(lines[0], "alpha") || !strings.Contains(lines[0], "beta") {
		t.Errorf("first row missing labels: %q", lines[0])
	}
	if !strings.Contains(lines[1], "10") {
		t.Errorf("second row missing secondary: %q", lines[1])
	}

	bordered := RenderTerminal(l, WithSize(40, 10), WithBorder())
	if got := len(strings.Split(bordered, "\n")); got != 12 {
		t.Errorf("bordered rows = %d, want 12", got)
	}
	if RenderTerminal(l, WithSize(0, 10)) != "" {
		t.Error("zero-width grid should render nothing")
	}
}

func TestWriteCells(t *testing.T) {
	row := make([]string, 8)
	for i := range row {
		row[i] = " "
	}
	writeCells(row, 0, 7, "日本語テキスト")
	got := strings.Join(row, "")
	if n := len([]rune(got)); n > 8 {
		t.Errorf("row overflow: %q", got)
	}
	if !strings.HasPrefix(got, " 日本") {
		t.Errorf("row = %q, want padded wide runes", got)
	}
}
