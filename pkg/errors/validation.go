package errors

import (
	"math"
	"strings"
	"unicode"
)

// MaxCanvasSide bounds either canvas dimension. Larger canvases are almost
// certainly unit mistakes and would produce unwieldy raster output.
const MaxCanvasSide = 20000

// ValidateCanvas checks that both canvas dimensions are finite, positive and
// at most MaxCanvasSide.
func ValidateCanvas(width, height float64) error {
	for _, d := range []struct {
		name string
		v    float64
	}{{"width", width}, {"height", height}} {
		switch {
		case math.IsNaN(d.v) || math.IsInf(d.v, 0):
			return New(ErrCodeInvalidDimensions, "%s must be finite", d.name)
		case d.v <= 0:
			return New(ErrCodeInvalidDimensions, "%s must be positive, got %g", d.name, d.v)
		case d.v > MaxCanvasSide:
			return New(ErrCodeInvalidDimensions, "%s too large (max %d), got %g", d.name, MaxCanvasSide, d.v)
		}
	}
	return nil
}

// ValidateMaxDisplay checks the display cap. Zero means "no cap".
func ValidateMaxDisplay(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "max display cannot be negative, got %d", n)
	}
	return nil
}

// ValidateInset checks that the per-tile gutter is finite and non-negative.
func ValidateInset(d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return New(ErrCodeInvalidInput, "inset must be a non-negative number, got %g", d)
	}
	return nil
}

// ValidateWeight rejects NaN and infinite weights. Negative weights are left
// to the caller to clamp.
func ValidateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return New(ErrCodeInvalidItems, "weight must be finite, got %g", w)
	}
	return nil
}

// ValidateItemID validates an item identifier.
//
// The rules are intentionally conservative since ids end up in SVG element
// ids and cache keys:
//   - No empty ids
//   - Maximum length of 256 characters
//   - No control characters
//   - No quotes or angle brackets
func ValidateItemID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidItems, "item id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidItems, "item id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidItems, "item id contains invalid control characters")
		}
	}

	if strings.ContainsAny(id, `"'<>`) {
		return New(ErrCodeInvalidItems, "item id contains invalid characters: %q", id)
	}

	return nil
}
