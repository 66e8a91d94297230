// Package dataset defines the on-disk and on-the-wire formats for squaremap.
//
// # Item files
//
// Ranked item lists can be written as JSON, TOML or YAML. The format is
// picked from the file extension by [ReadItemsFile]:
//
//	{"items": [{"id": "go", "text": "golang tutorial", "weight": 12000}]}
//
//	[[items]]
//	text = "golang tutorial"
//	weight = 12000
//
//	items:
//	  - text: golang tutorial
//	    weight: 12000
//
// A bare JSON array of items is accepted as well. Items without an id use
// their text; items without secondary text get the formatted weight.
//
// # Layout files
//
// [Layout] is the serialized form of a computed treemap. It carries both the
// drawn and the un-inset geometry of every tile plus its colour, so a layout
// can be rendered later without recomputing it. Layouts carry json and bson
// tags and are stored as-is by the HTTP service.
package dataset
