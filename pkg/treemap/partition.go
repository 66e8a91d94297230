package treemap

import "math"

// Axis is the direction along which a region is split.
type Axis int

const (
	// AxisHorizontal splits along x: strips are columns stacked left to right.
	AxisHorizontal Axis = iota
	// AxisVertical splits along y: strips are rows stacked top to bottom.
	AxisVertical
)

func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// axisFor splits along the longer side of r.
func axisFor(r Rect) Axis {
	if r.W >= r.H {
		return AxisHorizontal
	}
	return AxisVertical
}

// Params carries the per-call settings the partitioner threads through the
// recursion.
type Params struct {
	Inset      float64 // Gutter removed from each side of an emitted tile
	MaxDisplay int     // Hue denominator
	Mode       Mode    // Presentation mode for colour lightness
}

// Partition lays items out inside region and returns one tile per item.
// origin is the position of items[0] in the original input ordering.
//
// Each call returns a fresh slice; sub-results are concatenated, never
// written into shared state.
func Partition(items []Item, region Rect, origin int, p Params) []Tile {
	switch len(items) {
	case 0:
		return nil
	case 1:
		return layoutStrip(items, region, axisFor(region), origin, p)
	}

	axis := axisFor(region)
	weights, total := shares(items)
	k := bestSplit(weights, total, region, axis)

	var prefix float64
	for _, w := range weights[:k] {
		prefix += w
	}
	ratio := prefix / total

	var strip, rest Rect
	if axis == AxisHorizontal {
		sw := region.W * ratio
		strip = Rect{X: region.X, Y: region.Y, W: sw, H: region.H}
		rest = Rect{X: region.X + sw, Y: region.Y, W: region.W - sw, H: region.H}
	} else {
		sh := region.H * ratio
		strip = Rect{X: region.X, Y: region.Y, W: region.W, H: sh}
		rest = Rect{X: region.X, Y: region.Y + sh, W: region.W, H: region.H - sh}
	}

	tiles := layoutStrip(items[:k], strip, axis, origin, p)
	return append(tiles, Partition(items[k:], rest, origin+k, p)...)
}

// bestSplit returns the prefix length whose worst member distortion is
// smallest. Candidates run over [1, n-1); the first minimum wins and 1 is
// used when the range is empty.
func bestSplit(weights []float64, total float64, region Rect, axis Axis) int {
	best, bestScore := 1, math.Inf(1)
	var prefix float64
	for k := 1; k < len(weights)-1; k++ {
		prefix += weights[k-1]
		if score := worstAspect(weights[:k], prefix, total, region, axis); score < bestScore {
			best, bestScore = k, score
		}
	}
	return best
}

// worstAspect scores a candidate strip holding weights.
func worstAspect(weights []float64, prefix, total float64, region Rect, axis Axis) float64 {
	if prefix <= 0 || total <= 0 {
		return math.Inf(1)
	}
	ratio := prefix / total
	dim1, dim2 := region.H*ratio, region.W
	if axis == AxisHorizontal {
		dim1, dim2 = region.W*ratio, region.H
	}

	worst := 0.0
	for _, w := range weights {
		itemDim := w / prefix * dim2
		worst = max(worst, distortion(dim1, itemDim))
	}
	return worst
}

// distortion is max(a/b, b/a), +Inf when either side is not positive.
func distortion(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return math.Inf(1)
	}
	return max(a/b, b/a)
}
