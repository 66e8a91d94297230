package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/matzehuels/squaremap/pkg/errors"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10" fill="red"/></svg>`

func TestToPDF(t *testing.T) {
	ctx := context.Background()
	pdf, err := ToPDF(ctx, []byte(tinySVG))
	if !HasConverter() {
		if !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Errorf("without rsvg-convert: err = %v, want UNSUPPORTED", err)
		}
		t.Skip("rsvg-convert not installed")
	}
	if err != nil {
		t.Fatalf("ToPDF: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output is not a PDF: %q", pdf[:min(8, len(pdf))])
	}
}

func TestToPNG(t *testing.T) {
	if !HasConverter() {
		t.Skip("rsvg-convert not installed")
	}
	png, err := ToPNG(context.Background(), []byte(tinySVG), 2)
	if err != nil {
		t.Fatalf("ToPNG: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}
