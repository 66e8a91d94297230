package treemap

import "math"

const (
	// DefaultMaxDisplay caps how many items are laid out.
	DefaultMaxDisplay = 50

	// DefaultInset is the gutter removed from each side of a tile.
	DefaultInset = 1.0
)

// Layout is a complete treemap over a Width x Height canvas.
type Layout struct {
	Width, Height float64
	MaxDisplay    int
	Mode          Mode
	Inset         float64
	Tiles         []Tile
}

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	maxDisplay int
	mode       Mode
	inset      float64
}

// WithMaxDisplay caps the number of items laid out. n <= 0 disables the cap.
func WithMaxDisplay(n int) Option { return func(c *buildConfig) { c.maxDisplay = n } }

// WithMode sets the presentation mode used for colour lightness.
func WithMode(m Mode) Option { return func(c *buildConfig) { c.mode = m } }

// WithInset sets the per-side gutter. Negative values are treated as zero.
func WithInset(d float64) Option { return func(c *buildConfig) { c.inset = max(0, d) } }

// Build lays items out over a width x height canvas anchored at the origin.
//
// Non-positive canvas dimensions produce a layout without tiles.
func Build(items []Item, width, height float64, opts ...Option) Layout {
	cfg := buildConfig{
		maxDisplay: DefaultMaxDisplay,
		mode:       ModeDark,
		inset:      DefaultInset,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	l := Layout{
		Width:      width,
		Height:     height,
		MaxDisplay: cfg.maxDisplay,
		Mode:       cfg.mode,
		Inset:      cfg.inset,
	}
	if !(width > 0) || !(height > 0) {
		return l
	}

	shown := Normalize(items, cfg.maxDisplay)
	hueSteps := cfg.maxDisplay
	if hueSteps <= 0 {
		hueSteps = len(shown)
	}

	l.Tiles = Partition(shown, Rect{W: width, H: height}, 0, Params{
		Inset:      cfg.inset,
		MaxDisplay: hueSteps,
		Mode:       cfg.mode,
	})
	return l
}

// TileAt returns the index into Tiles of the tile whose bounds contain
// (x, y), or -1.
func (l Layout) TileAt(x, y float64) int {
	for i, t := range l.Tiles {
		if t.Bounds.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Stats summarises layout quality.
type Stats struct {
	Tiles       int     // Number of tiles
	Visible     int     // Tiles with positive area
	WorstAspect float64 // Largest aspect distortion among visible tiles
	MeanAspect  float64 // Mean aspect distortion among visible tiles
	Coverage    float64 // Sum of un-inset tile area over canvas area
}

// Stats computes quality figures over the un-inset bounds.
func (l Layout) Stats() Stats {
	s := Stats{Tiles: len(l.Tiles)}
	var area, sum float64
	for _, t := range l.Tiles {
		a := t.Bounds.Area()
		area += a
		if a <= 0 {
			continue
		}
		asp := t.Bounds.Aspect()
		s.Visible++
		sum += asp
		s.WorstAspect = math.Max(s.WorstAspect, asp)
	}
	if s.Visible > 0 {
		s.MeanAspect = sum / float64(s.Visible)
	}
	if canvas := l.Width * l.Height; canvas > 0 {
		s.Coverage = area / canvas
	}
	return s
}
