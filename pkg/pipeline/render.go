package pipeline

import (
	"context"
	"fmt"
	"math"

	"github.com/matzehuels/squaremap/pkg/render/sink"
	"github.com/matzehuels/squaremap/pkg/render/styles"
	"github.com/matzehuels/squaremap/pkg/treemap"
)

// Text output uses one character cell per 10x20 canvas pixels, matching
// the usual terminal cell aspect.
const (
	textCellWidth  = 10.0
	textCellHeight = 20.0
)

// Render generates output artifacts in the requested formats. Options must
// already be validated.
func Render(ctx context.Context, l treemap.Layout, opts Options) (map[string][]byte, error) {
	style, err := styles.Lookup(opts.Style)
	if err != nil {
		return nil, err
	}
	svgOpts := buildSVGOptions(style, opts)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var data []byte
		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithScale(opts.Scale), sink.WithPNGStyle(style))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, l, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(l)
		case FormatText:
			cols, rows := textGridSize(l)
			data = []byte(sink.RenderTerminal(l, sink.WithSize(cols, rows)) + "\n")
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func buildSVGOptions(style styles.Style, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithStyle(style)}
	if opts.Links {
		svgOpts = append(svgOpts, sink.WithLinks())
	}
	return svgOpts
}

func textGridSize(l treemap.Layout) (cols, rows int) {
	cols = max(1, int(math.Round(l.Width/textCellWidth)))
	rows = max(1, int(math.Round(l.Height/textCellHeight)))
	return cols, rows
}

// ContentType returns the MIME type of a format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	case FormatText:
		return "text/plain; charset=utf-8"
	}
	return "application/octet-stream"
}
