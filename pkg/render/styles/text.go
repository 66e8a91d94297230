package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// secondaryScale sizes the secondary line relative to the label font.
const secondaryScale = 0.8

// TextLine is one positioned line of tile text. X, Y is the line centre.
type TextLine struct {
	Text      string
	X, Y      float64
	Size      float64
	Secondary bool
}

// PlaceLabel centres the fitted label lines, plus the secondary line when
// present, inside the tile. Hidden labels place nothing.
func PlaceLabel(t Tile) []TextLine {
	if !t.Label.Show {
		return nil
	}
	lh := t.Label.LineHeight()
	n := len(t.Label.Lines)
	if t.Secondary != "" {
		n++
	}
	if n == 0 {
		return nil
	}

	cx := t.X + t.W/2
	top := t.Y + t.H/2 - float64(n)*lh/2
	lines := make([]TextLine, 0, n)
	for i, s := range t.Label.Lines {
		lines = append(lines, TextLine{Text: s, X: cx, Y: top + (float64(i)+0.5)*lh, Size: t.Label.FontSize})
	}
	if t.Secondary != "" {
		lines = append(lines, TextLine{
			Text:      t.Secondary,
			X:         cx,
			Y:         top + (float64(n)-0.5)*lh,
			Size:      t.Label.FontSize * secondaryScale,
			Secondary: true,
		})
	}
	return lines
}

// renderLabel writes the placed lines as one <text> element per line.
func renderLabel(buf *bytes.Buffer, t Tile, family string) {
	for _, ln := range PlaceLabel(t) {
		class, opacity := "tile-text", ""
		if ln.Secondary {
			class, opacity = "tile-secondary", ` fill-opacity="0.8"`
		}
		fmt.Fprintf(buf, `  <text class="%s" data-tile="%d" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.2f" fill="%s"%s pointer-events="none">%s</text>`+"\n",
			class, t.Index, ln.X, ln.Y, EscapeXML(family), ln.Size, t.TextFill, opacity, EscapeXML(ln.Text))
	}
}

// EscapeXML escapes s for use in XML text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// WrapURL wraps the output of fn in an <a> element when url is set.
func WrapURL(buf *bytes.Buffer, url string, fn func()) {
	if url != "" {
		fmt.Fprintf(buf, `  <a href="%s" target="_blank">`+"\n", EscapeXML(url))
	}
	fn()
	if url != "" {
		buf.WriteString("  </a>\n")
	}
}
