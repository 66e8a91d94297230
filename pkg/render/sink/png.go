package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/squaremap/pkg/fonts"
	"github.com/matzehuels/squaremap/pkg/render/styles"
	"github.com/matzehuels/squaremap/pkg/treemap"
)

// MaxPNGPixels bounds the raster size after scaling.
const MaxPNGPixels = 64 << 20

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
	style styles.Style
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption { return func(r *pngRenderer) { r.scale = s } }

// WithPNGStyle selects the tile shape; only the corner rounding of
// styles.Rounded carries over to raster output.
func WithPNGStyle(s styles.Style) PNGOption { return func(r *pngRenderer) { r.style = s } }

// RenderPNG rasterises the layout.
func RenderPNG(l treemap.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0, style: styles.Flat{}}
	for _, opt := range opts {
		opt(&r)
	}
	if !(r.scale > 0) {
		r.scale = 1
	}

	w := int(math.Ceil(l.Width * r.scale))
	h := int(math.Ceil(l.Height * r.scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("png: empty canvas %vx%v", l.Width, l.Height)
	}
	if w*h > MaxPNGPixels {
		return nil, fmt.Errorf("png: %dx%d exceeds %d pixels, lower the scale", w, h, MaxPNGPixels)
	}

	dc := gg.NewContext(w, h)
	dc.SetHexColor(styles.Background(l.Mode))
	dc.Clear()

	faces := faceCache{}
	defer faces.close()

	rounded := r.style != nil && r.style.Name() == "rounded"
	s := r.scale
	for _, t := range styles.FromLayout(l) {
		dc.SetHexColor(t.Fill)
		if rounded {
			dc.DrawRoundedRectangle(t.X*s, t.Y*s, t.W*s, t.H*s, min(6, t.W/4, t.H/4)*s)
		} else {
			dc.DrawRectangle(t.X*s, t.Y*s, t.W*s, t.H*s)
		}
		dc.Fill()

		dc.SetHexColor(t.TextFill)
		for _, ln := range styles.PlaceLabel(t) {
			face, err := faces.get(ln.Size * s)
			if err != nil {
				return nil, err
			}
			dc.SetFontFace(face)
			dc.DrawStringAnchored(ln.Text, ln.X*s, ln.Y*s, 0.5, 0.35)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// faceCache shares faces between labels of the same pixel size.
type faceCache map[float64]font.Face

func (c faceCache) get(size float64) (font.Face, error) {
	size = math.Round(size*4) / 4
	if f, ok := c[size]; ok {
		return f, nil
	}
	f, err := fonts.Face(fonts.Regular, size, 72)
	if err != nil {
		return nil, err
	}
	c[size] = f
	return f, nil
}

func (c faceCache) close() {
	for _, f := range c {
		f.Close()
	}
}
