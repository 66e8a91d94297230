package pipeline

import (
	"io"

	"github.com/matzehuels/squaremap/pkg/dataset"
	"github.com/matzehuels/squaremap/pkg/treemap"
)

// LoadItems reads and prepares the items file at path. The format follows
// the file extension.
func LoadItems(path string) ([]treemap.Item, error) {
	recs, err := dataset.ReadItemsFile(path)
	if err != nil {
		return nil, err
	}
	return treemap.FromRecords(recs), nil
}

// DecodeItems reads and prepares items from r.
func DecodeItems(r io.Reader, format dataset.Format) ([]treemap.Item, error) {
	recs, err := dataset.ReadItems(r, format)
	if err != nil {
		return nil, err
	}
	return treemap.FromRecords(recs), nil
}

// PrepareItems applies the item file defaults and validation to items built
// in memory, e.g. from an API request body.
func PrepareItems(recs []dataset.Item) ([]treemap.Item, error) {
	recs, err := dataset.Prepare(recs)
	if err != nil {
		return nil, err
	}
	return treemap.FromRecords(recs), nil
}
