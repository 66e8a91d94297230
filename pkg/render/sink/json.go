package sink

import (
	"github.com/matzehuels/squaremap/pkg/dataset"
	"github.com/matzehuels/squaremap/pkg/treemap"
)

// RenderJSON exports the layout as indented JSON. The output can be read
// back with dataset.ReadLayout and treemap.Parse.
func RenderJSON(l treemap.Layout) ([]byte, error) {
	return dataset.MarshalLayout(l.Export())
}
