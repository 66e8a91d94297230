// Package sink provides output format renderers for treemap layouts.
//
// # Overview
//
// A "sink" transforms a computed [treemap.Layout] into a final output
// format:
//
//   - SVG: scalable vector graphics with hover highlighting and tooltips
//   - PNG: raster output drawn natively with the Go fonts
//   - PDF: print-ready output (requires rsvg-convert)
//   - JSON: layout data export, readable by `squaremap visualize`
//   - Terminal: a coloured cell grid for the console
//
// # SVG Output
//
//	svg := sink.RenderSVG(layout,
//	    sink.WithStyle(styles.Rounded{}),
//	    sink.WithLinks(),
//	)
//
// Each tile is a <rect id="tile-N"> where N is the item's input position,
// followed by its fitted label lines. Tiles whose label does not fit show
// only a <title> tooltip.
//
// # PNG Output
//
// [RenderPNG] rasterises the same model with fogleman/gg, so it works
// without librsvg:
//
//	png, err := sink.RenderPNG(layout, sink.WithScale(2))
//
// [treemap.Layout]: github.com/matzehuels/squaremap/pkg/treemap.Layout
package sink
