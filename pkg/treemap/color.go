package treemap

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Mode selects the presentation palette.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m == ModeDark || m == ModeLight }

const (
	saturation     = 0.70
	darkLightness  = 0.60
	lightLightness = 0.45

	// textLightnessCutoff is the CIE L* above which labels switch to dark text.
	textLightnessCutoff = 0.65
)

// Color is an HSL colour with hue in degrees and saturation/lightness in [0, 1].
type Color struct {
	H, S, L float64
}

// ColorFor returns the colour of the item at index in the original ordering.
// The hue depends only on index and maxDisplay, never on weight or position.
func ColorFor(index, maxDisplay int, mode Mode) Color {
	if maxDisplay <= 0 {
		maxDisplay = 1
	}
	hue := math.Mod(float64(index*360)/float64(maxDisplay), 360)
	l := lightLightness
	if mode != ModeLight {
		l = darkLightness
	}
	return Color{H: hue, S: saturation, L: l}
}

// CSS formats the colour as a CSS hsl() value.
func (c Color) CSS() string {
	return fmt.Sprintf("hsl(%.1f, %.0f%%, %.0f%%)", c.H, c.S*100, c.L*100)
}

// Colorful converts to a go-colorful RGB colour.
func (c Color) Colorful() colorful.Color {
	return colorful.Hsl(c.H, c.S, c.L).Clamped()
}

// Hex returns the #rrggbb form.
func (c Color) Hex() string { return c.Colorful().Hex() }

// Text returns a label colour that contrasts with c.
func (c Color) Text() string {
	l, _, _ := c.Colorful().Lab()
	if l > textLightnessCutoff {
		return "#111111"
	}
	return "#ffffff"
}
