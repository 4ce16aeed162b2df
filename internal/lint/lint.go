// Package lint reports rule keys that match nothing in the host catalog.
package lint

import (
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/xtding233/custom-weight/internal/catalog"
	"github.com/xtding233/custom-weight/internal/config"
)

// Finding is one rule key with no matching item.
type Finding struct {
	Table      string // config table the key came from
	Key        string
	Suggestion string // closest item name or id, empty when none
}

// candidates implements fuzzy.Source over item names and ids.
type candidates []string

func (c candidates) String(i int) string { return c[i] }
func (c candidates) Len() int { return len(c) }

// Unmatched checks every blacklist, parent and specific key against the catalog.
func Unmatched(cfg *config.Config, items catalog.Catalog) []Finding {
	ids := make(map[string]struct{}, len(items))
	names := make(map[string]struct{}, len(items))
	parents := make(map[string]struct{})
	var idOrName candidates
	for _, it := range items {
		if it == nil {
			continue
		}
		ids[it.ID] = struct{}{}
		parents[it.ParentID] = struct{}{}
		if it.Name != "" {
			names[it.Name] = struct{}{}
			idOrName = append(idOrName, it.Name)
		}
		idOrName = append(idOrName, it.ID)
	}
	known := func(k string) bool {
		_, isID := ids[k]
		_, isName := names[k]
		return isID || isName
	}

	var out []Finding
	check := func(table string, keys []string, ok func(string) bool) {
		for _, k := range keys {
			if ok(k) {
				continue
			}
			out = append(out, Finding{Table: table, Key: k, Suggestion: closest(k, idOrName)})
		}
	}

	check("blacklist", sortedKeys(cfg.Item.Blacklist), known)
	check("parentAdjustments", sortedKeys(cfg.Item.ParentAdjustments), func(k string) bool {
		_, isParent := parents[k]
		_, isID := ids[k]
		return isParent || isID
	})
	check("specificAdjustments", sortedKeys(cfg.Item.SpecificAdjustments), known)
	return out
}

func closest(key string, src candidates) string {
	matches := fuzzy.FindFrom(key, src)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
