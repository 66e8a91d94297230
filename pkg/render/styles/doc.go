// Package styles defines how treemap tiles and labels are drawn as SVG.
//
// A [Style] receives pre-computed [Tile] render models: geometry, colours
// and the fitted label are already resolved, so styles only decide shape
// and decoration. Two styles ship:
//
//   - [Flat]: square tiles separated by the layout gutter
//   - [Rounded]: rounded tiles with a soft drop shadow
//
// [Lookup] resolves a style by name for the CLI and HTTP API.
package styles
