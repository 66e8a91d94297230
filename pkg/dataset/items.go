package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/squaremap/pkg/errors"
)

// Format identifies an item file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the item file format from its extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported item file extension %q (want .json, .toml, .yaml)", filepath.Ext(path))
}

// ReadItemsFile reads and prepares the items in path.
func ReadItemsFile(path string) ([]Item, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadItems(f, format)
}

// ReadItems decodes items in the given format and prepares them with Prepare.
func ReadItems(r io.Reader, format Format) ([]Item, error) {
	var (
		items []Item
		err   error
	)
	switch format {
	case FormatJSON:
		items, err = decodeJSON(r)
	case FormatTOML:
		var set ItemSet
		_, err = toml.NewDecoder(r).Decode(&set)
		items = set.Items
	case FormatYAML:
		var set ItemSet
		if err = yaml.NewDecoder(r).Decode(&set); err == io.EOF {
			err = nil
		}
		items = set.Items
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported item format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidItems, err, "decode %s items", format)
	}
	return Prepare(items)
}

// WriteItems encodes items in the given format as an item set document.
func WriteItems(w io.Writer, items []Item, format Format) error {
	set := ItemSet{Items: items}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(set)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(set)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(set); err != nil {
			return err
		}
		return enc.Close()
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported item format %q", format)
}

// decodeJSON accepts either {"items": [...]} or a bare array.
func decodeJSON(r io.Reader) ([]Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	if data[0] == '[' {
		var items []Item
		err := json.Unmarshal(data, &items)
		return items, err
	}
	var set ItemSet
	err = json.Unmarshal(data, &set)
	return set.Items, err
}

// Prepare fills defaults and validates items in place.
//
//   - An item needs a text or an id; whichever is missing copies the other.
//   - Explicit ids are checked with errors.ValidateItemID; ids copied from
//     the text are not, so any keyword text is accepted.
//   - Weights must be finite; negative weights are clamped to zero.
//   - Missing secondary text becomes the formatted weight.
func Prepare(items []Item) ([]Item, error) {
	for i := range items {
		it := &items[i]
		it.ID = strings.TrimSpace(it.ID)
		it.Text = strings.TrimSpace(it.Text)

		if it.ID != "" {
			if err := errors.ValidateItemID(it.ID); err != nil {
				return nil, errors.New(errors.ErrCodeInvalidItems, "item %d: %s", i, errors.UserMessage(err))
			}
		}
		switch {
		case it.ID == "" && it.Text == "":
			return nil, errors.New(errors.ErrCodeInvalidItems, "item %d: text or id is required", i)
		case it.ID == "":
			it.ID = it.Text
		case it.Text == "":
			it.Text = it.ID
		}

		if err := errors.ValidateWeight(it.Weight); err != nil {
			return nil, errors.New(errors.ErrCodeInvalidItems, "item %d (%s): %s", i, it.ID, errors.UserMessage(err))
		}
		it.Weight = max(0, it.Weight)

		if it.Secondary == "" {
			it.Secondary = FormatWeight(it.Weight)
		}
	}
	return items, nil
}
