package treemap

// layoutStrip subdivides region across the axis perpendicular to the split
// axis, giving each item its share of the strip's length. The last item takes
// whatever length remains so the strip is covered exactly.
func layoutStrip(items []Item, region Rect, axis Axis, origin int, p Params) []Tile {
	weights, total := shares(items)

	length := region.W
	if axis == AxisHorizontal {
		length = region.H
	}

	tiles := make([]Tile, len(items))
	var offset float64
	for i := range items {
		ext := length * weights[i] / total
		if i == len(items)-1 {
			ext = max(0, length-offset)
		}

		cell := Rect{X: region.X + offset, Y: region.Y, W: ext, H: region.H}
		if axis == AxisHorizontal {
			cell = Rect{X: region.X, Y: region.Y + offset, W: region.W, H: ext}
		}
		offset += ext

		tiles[i] = newTile(&items[i], origin+i, cell, p)
	}
	return tiles
}

func newTile(it *Item, index int, cell Rect, p Params) Tile {
	drawn := cell.Inset(p.Inset)
	return Tile{
		Item:   it,
		Index:  index,
		Bounds: cell,
		X:      drawn.X,
		Y:      drawn.Y,
		Width:  drawn.W,
		Height: drawn.H,
		Color:  ColorFor(index, p.MaxDisplay, p.Mode),
	}
}
