package styles

import (
	"bytes"

	"github.com/matzehuels/squaremap/pkg/errors"
	"github.com/matzehuels/squaremap/pkg/treemap"
)

// Style defines the visual appearance of a treemap.
type Style interface {
	// Name is the identifier used by Lookup.
	Name() string
	// RenderDefs writes SVG <defs> content (filters, gradients).
	RenderDefs(buf *bytes.Buffer, mode treemap.Mode)
	// RenderTile writes the SVG shape for one tile.
	RenderTile(buf *bytes.Buffer, t Tile)
	// RenderText writes the tile's label and secondary line.
	RenderText(buf *bytes.Buffer, t Tile)
}

// Tile is the render model of one placed item.
type Tile struct {
	Index     int     // Position in the input ordering; used for element ids
	ID        string  // Item identifier
	Text      string  // Full display text, used for tooltips
	Secondary string  // Supplementary line below the label
	URL       string  // Optional link target
	X, Y      float64 // Top-left of the drawn rectangle
	W, H      float64
	Fill      string // Tile colour (#rrggbb)
	TextFill  string // Label colour contrasting with Fill
	Label     treemap.Label
}

// FromLayout builds render models for every tile with a drawable area.
func FromLayout(l treemap.Layout) []Tile {
	out := make([]Tile, 0, len(l.Tiles))
	for _, t := range l.Tiles {
		if t.Width <= 0 || t.Height <= 0 {
			continue
		}
		rt := Tile{
			Index:    t.Index,
			X:        t.X,
			Y:        t.Y,
			W:        t.Width,
			H:        t.Height,
			Fill:     t.Color.Hex(),
			TextFill: t.Color.Text(),
			Label:    t.Label(),
		}
		if it := t.Item; it != nil {
			rt.ID, rt.Text, rt.Secondary, rt.URL = it.ID, it.Text, it.Secondary, it.URL
		}
		out = append(out, rt)
	}
	return out
}

// Background returns the canvas colour for mode.
func Background(mode treemap.Mode) string {
	if mode == treemap.ModeLight {
		return "#f7f7f5"
	}
	return "#16161d"
}

// Names lists the available style names.
func Names() []string { return []string{"flat", "rounded"} }

// Lookup returns the style called name. The empty name selects Flat.
func Lookup(name string) (Style, error) {
	switch name {
	case "", "flat":
		return Flat{}, nil
	case "rounded":
		return Rounded{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (want flat or rounded)", name)
}
