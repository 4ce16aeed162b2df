// Package catalog models the host's item templates: only the fields the
// weight pass reads or writes are kept.
package catalog

import "math"

// Item is one host item template.
type Item struct {
	ID       string
	Name     string
	ParentID string
	// Weight is nil when the item type carries no weight property.
	Weight *float64
}

// HasWeight reports whether the item exposes a weight field.
func (it *Item) HasWeight() bool { return it != nil && it.Weight != nil }

// SetWeight writes w into the item's weight field, creating it if needed.
func (it *Item) SetWeight(w float64) {
	if it.Weight == nil {
		it.Weight = new(float64)
	}
	*it.Weight = w
}

// Catalog is the host collection in file order.
type Catalog []*Item

// ByID returns the item with the given id.
func (c Catalog) ByID(id string) (*Item, bool) {
	for _, it := range c {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}

// Weights snapshots the weight of every item that has one, keyed by id.
func (c Catalog) Weights() map[string]float64 {
	out := make(map[string]float64, len(c))
	for _, it := range c {
		if it.HasWeight() {
			out[it.ID] = *it.Weight
		}
	}
	return out
}

// Clone deep-copies the catalog so a pass can run without touching the original.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for i, it := range c {
		cp := *it
		if it.Weight != nil {
			w := *it.Weight
			cp.Weight = &w
		}
		out[i] = &cp
	}
	return out
}

// Changed returns the current weight of every item whose weight differs from
// the before snapshot.
func (c Catalog) Changed(before map[string]float64) map[string]float64 {
	out := make(map[string]float64)
	for _, it := range c {
		if !it.HasWeight() {
			continue
		}
		w := *it.Weight
		if old, ok := before[it.ID]; ok && (old == w || math.IsNaN(old) && math.IsNaN(w)) {
			continue
		}
		out[it.ID] = w
	}
	return out
}
