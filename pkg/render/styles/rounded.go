package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/squaremap/pkg/fonts"
	"github.com/matzehuels/squaremap/pkg/treemap"
)

const maxCornerRadius = 6.0

// Rounded draws tiles with rounded corners and a drop shadow.
type Rounded struct{}

func (Rounded) Name() string { return "rounded" }

func (Rounded) RenderDefs(buf *bytes.Buffer, mode treemap.Mode) {
	opacity := 0.45
	if mode == treemap.ModeLight {
		opacity = 0.2
	}
	fmt.Fprintf(buf, `  <defs>
    <filter id="tile-shadow" x="-10%%" y="-10%%" width="120%%" height="120%%">
      <feDropShadow dx="0" dy="1" stdDeviation="1.2" flood-color="#000" flood-opacity="%.2f"/>
    </filter>
  </defs>
`, opacity)
}

func (Rounded) RenderTile(buf *bytes.Buffer, t Tile) {
	r := min(maxCornerRadius, t.W/4, t.H/4)
	fmt.Fprintf(buf, `  <rect id="tile-%d" class="tile" data-id="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" ry="%.2f" fill="%s" filter="url(#tile-shadow)"><title>%s</title></rect>`+"\n",
		t.Index, EscapeXML(t.ID), t.X, t.Y, t.W, t.H, r, r, t.Fill, EscapeXML(tooltip(t)))
}

func (Rounded) RenderText(buf *bytes.Buffer, t Tile) {
	renderLabel(buf, t, fonts.FontFamily)
}
