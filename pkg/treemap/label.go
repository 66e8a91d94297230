package treemap

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	fontDivisor     = 8.0  // font size is min(w, h) / fontDivisor
	minLegibleFont  = 8.0  // at or below this no text is drawn
	glyphWidthRatio = 0.6  // average glyph width relative to font size
	lineHeightRatio = 1.2  // line height relative to font size
	ellipsis        = "..."
)

// Label is the text layout for one tile.
type Label struct {
	Show     bool
	FontSize float64
	Lines    []string
}

// FitLabel wraps text into a width x height box.
//
// Boxes whose derived font size is at most 8 units get Show == false. One
// line of height is reserved below the wrapped text for a secondary line;
// text that still overflows is cut to the available lines and the last line
// ends in an ellipsis.
func FitLabel(width, height float64, text string) Label {
	fontSize := math.Min(width, height) / fontDivisor
	if !(fontSize > minLegibleFont) {
		return Label{FontSize: fontSize}
	}

	maxChars := int(math.Floor(width / (fontSize * glyphWidthRatio)))
	lines := wrapWords(text, maxChars)

	maxLines := max(0, int(math.Floor(height/(fontSize*lineHeightRatio)))-1)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		if n := len(lines); n > 0 {
			lines[n-1] = withEllipsis(lines[n-1])
		}
	}
	return Label{Show: true, FontSize: fontSize, Lines: lines}
}

// LineHeight returns the distance between baselines.
func (l Label) LineHeight() float64 { return l.FontSize * lineHeightRatio }

// wrapWords greedily packs words into lines of at most maxChars cells. A
// word longer than the budget gets a line of its own.
func wrapWords(text string, maxChars int) []string {
	var lines []string
	var cur string
	for _, w := range strings.Fields(text) {
		switch {
		case cur == "":
			cur = w
		case runewidth.StringWidth(cur)+1+runewidth.StringWidth(w) <= maxChars:
			cur += " " + w
		default:
			lines = append(lines, cur)
			cur = w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

func withEllipsis(line string) string {
	r := []rune(line)
	if len(r) <= len(ellipsis) {
		return line
	}
	return string(r[:len(r)-len(ellipsis)]) + ellipsis
}
