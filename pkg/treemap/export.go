package treemap

import (
	"github.com/matzehuels/squaremap/pkg/dataset"
	"github.com/matzehuels/squaremap/pkg/errors"
)

// FromRecords converts decoded item records into layout items.
func FromRecords(recs []dataset.Item) []Item {
	items := make([]Item, len(recs))
	for i, r := range recs {
		items[i] = Item{
			ID:        r.ID,
			Text:      r.Text,
			Secondary: r.Secondary,
			Weight:    r.Weight,
			URL:       r.URL,
		}
	}
	return items
}

// Export converts the layout into its serializable form.
func (l Layout) Export() dataset.Layout {
	out := dataset.Layout{
		Width:      l.Width,
		Height:     l.Height,
		MaxDisplay: l.MaxDisplay,
		Mode:       string(l.Mode),
		Inset:      l.Inset,
		Tiles:      make([]dataset.Tile, len(l.Tiles)),
	}
	for i, t := range l.Tiles {
		dt := dataset.Tile{
			Index:  t.Index,
			X:      t.X,
			Y:      t.Y,
			Width:  t.Width,
			Height: t.Height,
			Bounds: dataset.Rect{X: t.Bounds.X, Y: t.Bounds.Y, Width: t.Bounds.W, Height: t.Bounds.H},
			Color: dataset.Color{
				Hue:        t.Color.H,
				Saturation: t.Color.S,
				Lightness:  t.Color.L,
				Hex:        t.Color.Hex(),
			},
		}
		if it := t.Item; it != nil {
			dt.ID, dt.Text, dt.Secondary, dt.URL, dt.Weight = it.ID, it.Text, it.Secondary, it.URL, it.Weight
		}
		out.Tiles[i] = dt
	}
	return out
}

// Parse rebuilds a layout from its serialized form. Each tile gets its own
// freshly allocated Item.
func Parse(dl dataset.Layout) (Layout, error) {
	mode := Mode(dl.Mode)
	if mode == "" {
		mode = ModeDark
	}
	if !mode.Valid() {
		return Layout{}, errors.New(errors.ErrCodeInvalidMode, "unknown mode %q", dl.Mode)
	}
	if err := errors.ValidateCanvas(dl.Width, dl.Height); err != nil {
		return Layout{}, err
	}

	items := make([]Item, len(dl.Tiles))
	l := Layout{
		Width:      dl.Width,
		Height:     dl.Height,
		MaxDisplay: dl.MaxDisplay,
		Mode:       mode,
		Inset:      dl.Inset,
		Tiles:      make([]Tile, len(dl.Tiles)),
	}
	for i, dt := range dl.Tiles {
		items[i] = Item{ID: dt.ID, Text: dt.Text, Secondary: dt.Secondary, Weight: dt.Weight, URL: dt.URL}
		l.Tiles[i] = Tile{
			Item:   &items[i],
			Index:  dt.Index,
			Bounds: Rect{X: dt.Bounds.X, Y: dt.Bounds.Y, W: dt.Bounds.Width, H: dt.Bounds.Height},
			X:      dt.X,
			Y:      dt.Y,
			Width:  dt.Width,
			Height: dt.Height,
			Color:  Color{H: dt.Color.Hue, S: dt.Color.Saturation, L: dt.Color.Lightness},
		}
	}
	return l, nil
}
