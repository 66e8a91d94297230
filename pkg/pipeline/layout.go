package pipeline

import (
	"github.com/matzehuels/squaremap/pkg/treemap"
)

// GenerateLayout lays items out with the layout fields of opts. Options
// must already be validated.
func GenerateLayout(items []treemap.Item, opts Options) treemap.Layout {
	return treemap.Build(items, opts.Width, opts.Height, opts.LayoutOptions()...)
}
