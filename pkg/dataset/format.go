package dataset

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatWeight renders a weight with thousands separators, e.g. "12,345".
// Fractional weights keep one decimal.
func FormatWeight(w float64) string {
	if w == math.Trunc(w) && math.Abs(w) < 1e15 {
		return printer.Sprintf("%d", int64(w))
	}
	return printer.Sprintf("%.1f", w)
}

// CompactWeight renders a weight in short form: 950, 12.3K, 4.5M, 1.2B.
func CompactWeight(w float64) string {
	units := []struct {
		div    float64
		suffix string
	}{
		{1e9, "B"},
		{1e6, "M"},
		{1e3, "K"},
	}
	abs := math.Abs(w)
	for _, u := range units {
		if abs >= u.div {
			return trimZero(strconv.FormatFloat(w/u.div, 'f', 1, 64)) + u.suffix
		}
	}
	return trimZero(strconv.FormatFloat(w, 'f', 1, 64))
}

// trimZero drops a trailing ".0".
func trimZero(s string) string {
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
