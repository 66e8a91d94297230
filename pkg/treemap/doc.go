// Package treemap computes squarified treemap layouts.
//
// # Overview
//
// A treemap partitions a rectangular canvas into non-overlapping tiles whose
// areas are proportional to a set of item weights. This package implements a
// squarified variant that keeps tiles close to square so labels stay legible:
//
//  1. [Normalize] truncates the ranked input to the display cap
//  2. [Partition] picks a split point, lays out a strip and recurses
//  3. the strip step subdivides a strip in proportion to each item's weight
//  4. [FitLabel] wraps and truncates a label into a placed tile
//
// [Build] runs the first three steps over a whole canvas.
//
// # Ordering
//
// Items are laid out in the order given. Unlike the canonical algorithm the
// input is never sorted by weight: colours encode rank in the input, so the
// Nth item always receives the same hue no matter where it ends up.
//
// # Split search
//
// Each level scores every prefix by the worst aspect distortion among its
// members and keeps the lowest-scoring prefix as the next strip. This is a
// deliberate simplification of the row-building process in Bruls et al.;
// changing it changes the visual output.
//
// # Usage
//
//	items := []treemap.Item{
//	    {ID: "go", Text: "golang tutorial", Weight: 50},
//	    {ID: "rs", Text: "rust tutorial", Weight: 30},
//	    {ID: "zig", Text: "zig tutorial", Weight: 20},
//	}
//	l := treemap.Build(items, 300, 200, treemap.WithMode(treemap.ModeLight))
//	for _, t := range l.Tiles {
//	    label := t.Label()
//	    _ = label
//	}
//
// Every call is a pure function of its inputs and safe for concurrent use.
package treemap
