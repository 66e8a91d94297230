// Package fonts provides the Go fonts for raster rendering and the CSS font
// stack used in SVG output.
//
// The TTF data ships with golang.org/x/image, so raster output needs no
// system fonts. Parsed fonts are cached; faces are cheap to create per size.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the CSS font-family stack for SVG labels.
const FontFamily = `'Go', 'Helvetica Neue', Helvetica, Arial, sans-serif`

// Weight selects a face of the Go font family.
type Weight int

const (
	Regular Weight = iota
	Bold
)

var (
	parseOnce sync.Once
	regular   *truetype.Font
	bold      *truetype.Font
	parseErr  error
)

func load() error {
	parseOnce.Do(func() {
		if regular, parseErr = truetype.Parse(goregular.TTF); parseErr != nil {
			return
		}
		bold, parseErr = truetype.Parse(gobold.TTF)
	})
	return parseErr
}

// Font returns the parsed font for w.
func Font(w Weight) (*truetype.Font, error) {
	if err := load(); err != nil {
		return nil, err
	}
	if w == Bold {
		return bold, nil
	}
	return regular, nil
}

// Face returns a face of weight w at size points, rasterised at dpi.
// dpi <= 0 uses 72, so one point is one pixel.
func Face(w Weight, size, dpi float64) (font.Face, error) {
	f, err := Font(w)
	if err != nil {
		return nil, err
	}
	if dpi <= 0 {
		dpi = 72
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}
