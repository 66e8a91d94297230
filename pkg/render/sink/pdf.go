package sink

import (
	"context"

	"github.com/matzehuels/squaremap/pkg/render"
	"github.com/matzehuels/squaremap/pkg/treemap"
)

// RenderPDF renders the layout as PDF via SVG conversion. Hover interaction
// is dropped since PDF viewers ignore it.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, l treemap.Layout, opts ...SVGOption) ([]byte, error) {
	opts = append(opts, WithoutInteraction())
	return render.ToPDF(ctx, RenderSVG(l, opts...))
}
