package lint

import (
	"testing"

	"github.com/xtding233/custom-weight/internal/catalog"
	"github.com/xtding233/custom-weight/internal/config"
)

func TestUnmatched(t *testing.T) {
	items := catalog.Catalog{
		{ID: "5448e53e4bdc2d60728b4567", Name: "Backpack", ParentID: "566162e44bdc2d3f298b4573"},
		{ID: "5ab8ebf2d8ce87001c0fa8fb", Name: "item_equipment_backpack_pilgrim", ParentID: "5448e53e4bdc2d60728b4567"},
		nil,
	}
	cfg := &config.Config{Item: config.ItemRules{
		Adjustment: 0,
		ParentAdjustments: map[string]int{
			"5448e53e4bdc2d60728b4567": 10, // a parent id
			"566162e44bdc2d3f298b4573": 10, // parent of a node
			"nope":                     5,
		},
		SpecificAdjustments: map[string]float64{
			"item_equipment_backpack_pilgrim": 1,
			"backpack_pilgrm":                 2,
		},
		Blacklist: config.NewSet("5ab8ebf2d8ce87001c0fa8fb", "zzz"),
	}}

	got := Unmatched(cfg, items)
	if len(got) != 3 {
		t.Fatalf("expected 3 findings, got %+v", got)
	}
	if got[0].Table != "blacklist" || got[0].Key != "zzz" || got[0].Suggestion != "" {
		t.Fatalf("unexpected blacklist finding: %+v", got[0])
	}
	if got[1].Table != "parentAdjustments" || got[1].Key != "nope" {
		t.Fatalf("unexpected parent finding: %+v", got[1])
	}
	if got[2].Table != "specificAdjustments" || got[2].Key != "backpack_pilgrm" {
		t.Fatalf("unexpected specific finding: %+v", got[2])
	}
	if got[2].Suggestion != "item_equipment_backpack_pilgrim" {
		t.Fatalf("expected fuzzy suggestion, got %q", got[2].Suggestion)
	}
}

func TestUnmatchedEmpty(t *testing.T) {
	cfg := &config.Config{Item: config.ItemRules{Blacklist: config.NewSet()}}
	if got := Unmatched(cfg, nil); len(got) != 0 {
		t.Fatalf("no rules means no findings, got %+v", got)
	}
}
