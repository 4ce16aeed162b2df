package catalog

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/tidwall/gjson"
)

var ErrInvalidJSON = errors.New("catalog: invalid json")

// Field paths inside one item template.
const (
	pathID     = "_id"
	pathName   = "_name"
	pathParent = "_parent"
	pathWeight = "_props.Weight"
)

// Parse reads item templates from JSON. Both the host's id-keyed object
// ({"<id>": {...}}) and a plain array of templates are accepted.
// A Weight that is present but not a number is kept as NaN so the adjuster
// can report the item instead of silently treating it as weightless.
func Parse(data []byte) (Catalog, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() && !root.IsArray() {
		return nil, fmt.Errorf("%w: expected object or array of items", ErrInvalidJSON)
	}

	var items Catalog
	root.ForEach(func(key, v gjson.Result) bool {
		if !v.IsObject() {
			return true
		}
		it := &Item{
			ID:       v.Get(pathID).String(),
			Name:     v.Get(pathName).String(),
			ParentID: v.Get(pathParent).String(),
		}
		if it.ID == "" && key.Type == gjson.String {
			it.ID = key.String()
		}
		if w := v.Get(pathWeight); w.Exists() {
			if w.Type == gjson.Number {
				it.SetWeight(w.Float())
			} else {
				it.SetWeight(math.NaN())
			}
		}
		items = append(items, it)
		return true
	})
	if items == nil {
		items = Catalog{}
	}
	return items, nil
}

// Load reads and parses a catalog file.
func Load(path string) (Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	items, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return items, nil
}
