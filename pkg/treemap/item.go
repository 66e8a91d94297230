package treemap

// Item is a weighted entry to lay out.
type Item struct {
	ID        string  // Stable identifier
	Text      string  // Display text used by the label fitter
	Secondary string  // Optional supplementary line drawn below the label
	Weight    float64 // Non-negative magnitude driving tile area
	URL       string  // Optional link target
}

// Rect is an axis-aligned rectangle in canvas coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Area returns the rectangle's area.
func (r Rect) Area() float64 { return r.W * r.H }

// Aspect returns the aspect distortion max(w/h, h/w). Degenerate rectangles
// report +Inf.
func (r Rect) Aspect() float64 { return distortion(r.W, r.H) }

// Inset shrinks the rectangle by d on every side. A side shorter than 2d
// collapses to zero around its centre.
func (r Rect) Inset(d float64) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
	if out.W < 0 {
		out.X, out.W = r.X+r.W/2, 0
	}
	if out.H < 0 {
		out.Y, out.H = r.Y+r.H/2, 0
	}
	return out
}

// Contains reports whether (x, y) lies inside the half-open rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Overlaps reports whether the interiors of r and o intersect by more than eps
// on both axes.
func (r Rect) Overlaps(o Rect, eps float64) bool {
	dx := min(r.X+r.W, o.X+o.W) - max(r.X, o.X)
	dy := min(r.Y+r.H, o.Y+o.H) - max(r.Y, o.Y)
	return dx > eps && dy > eps
}

// Tile is a placed item.
//
// Bounds is the un-inset cell the partitioner assigned; X, Y, Width and
// Height are the inset rectangle a renderer draws.
type Tile struct {
	Item   *Item // Back-reference into the caller's slice
	Index  int   // Position in the original input ordering
	Bounds Rect
	X, Y   float64
	Width  float64
	Height float64
	Color  Color
}

// Rect returns the drawn (inset) rectangle.
func (t Tile) Rect() Rect { return Rect{X: t.X, Y: t.Y, W: t.Width, H: t.Height} }

// Label fits the item's display text into the drawn rectangle.
func (t Tile) Label() Label {
	if t.Item == nil {
		return FitLabel(t.Width, t.Height, "")
	}
	return FitLabel(t.Width, t.Height, t.Item.Text)
}
