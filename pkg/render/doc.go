// Package render turns computed treemap layouts into output artifacts.
//
// # Overview
//
//   - [styles]: visual styles that draw tiles and labels as SVG
//   - [sink]: output formats (SVG, PNG, PDF, JSON, terminal)
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// (from librsvg). PDF output always goes through [ToPDF]; PNG output is
// drawn natively by the sink and only uses [ToPNG] when explicitly asked
// for an SVG-faithful raster.
//
//	svg := sink.RenderSVG(layout, sink.WithStyle(styles.Rounded{}))
//	pdf, err := render.ToPDF(ctx, svg)
//
// [styles]: github.com/matzehuels/squaremap/pkg/render/styles
// [sink]: github.com/matzehuels/squaremap/pkg/render/sink
package render
