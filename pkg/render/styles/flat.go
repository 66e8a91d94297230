package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/squaremap/pkg/fonts"
	"github.com/matzehuels/squaremap/pkg/treemap"
)

// Flat draws plain rectangles; the layout inset provides the gutters.
type Flat struct{}

func (Flat) Name() string { return "flat" }

func (Flat) RenderDefs(*bytes.Buffer, treemap.Mode) {}

func (Flat) RenderTile(buf *bytes.Buffer, t Tile) {
	fmt.Fprintf(buf, `  <rect id="tile-%d" class="tile" data-id="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"><title>%s</title></rect>`+"\n",
		t.Index, EscapeXML(t.ID), t.X, t.Y, t.W, t.H, t.Fill, EscapeXML(tooltip(t)))
}

func (Flat) RenderText(buf *bytes.Buffer, t Tile) {
	renderLabel(buf, t, fonts.FontFamily)
}

// tooltip is the hover text: full label plus secondary.
func tooltip(t Tile) string {
	if t.Secondary == "" {
		return t.Text
	}
	return t.Text + " (" + t.Secondary + ")"
}
