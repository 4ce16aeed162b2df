package catalog

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

const sampleItems = `{
  "5448e53e4bdc2d60728b4567": {
    "_id": "5448e53e4bdc2d60728b4567",
    "_name": "Backpack",
    "_parent": "566162e44bdc2d3f298b4573",
    "_type": "Node",
    "_props": {}
  },
  "5ab8ebf2d8ce87001c0fa8fb": {
    "_id": "5ab8ebf2d8ce87001c0fa8fb",
    "_name": "item_equipment_backpack_pilgrim",
    "_parent": "5448e53e4bdc2d60728b4567",
    "_type": "Item",
    "_props": {"Weight": 1.2, "Width": 5}
  },
  "broken": {
    "_id": "broken",
    "_name": "broken_item",
    "_parent": "5448e53e4bdc2d60728b4567",
    "_props": {"Weight": "heavy"}
  }
}`

func TestParseObjectCatalog(t *testing.T) {
	items, err := Parse([]byte(sampleItems))
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	node := items[0]
	if node.HasWeight() {
		t.Fatalf("node without Weight must have nil weight: %+v", node)
	}
	pack := items[1]
	if pack.ID != "5ab8ebf2d8ce87001c0fa8fb" || pack.Name != "item_equipment_backpack_pilgrim" || pack.ParentID != "5448e53e4bdc2d60728b4567" {
		t.Fatalf("fields not mapped: %+v", pack)
	}
	if !pack.HasWeight() || *pack.Weight != 1.2 {
		t.Fatalf("expected weight 1.2, got %+v", pack.Weight)
	}
	broken := items[2]
	if !broken.HasWeight() || !math.IsNaN(*broken.Weight) {
		t.Fatalf("non-numeric weight should surface as NaN")
	}
}

func TestParseArrayUsesFieldIDs(t *testing.T) {
	items, err := Parse([]byte(`[{"_id":"a","_name":"A","_parent":"p","_props":{"Weight":0}}, 5]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("non-object entries should be ignored; got %d items", len(items))
	}
	if items[0].ID != "a" || !items[0].HasWeight() || *items[0].Weight != 0 {
		t.Fatalf("unexpected item: %+v", items[0])
	}
}

func TestParseKeyFallbackForID(t *testing.T) {
	items, err := Parse([]byte(`{"k1":{"_name":"n","_props":{"Weight":2}}}`))
	if err != nil {
		t.Fatal(err)
	}
	if items[0].ID != "k1" {
		t.Fatalf("object key should be used when _id is missing; got %q", items[0].ID)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	if _, err := Parse([]byte(`{"a":`)); !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}
	if _, err := Parse([]byte(`42`)); !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("scalar root must be rejected, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	if err := os.WriteFile(path, []byte(sampleItems), 0o644); err != nil {
		t.Fatal(err)
	}
	items, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := items.ByID("broken"); !ok {
		t.Fatalf("ByID should find loaded item")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("missing file must error")
	}
}

func TestCloneAndChanged(t *testing.T) {
	items, err := Parse([]byte(sampleItems))
	if err != nil {
		t.Fatal(err)
	}
	before := items.Weights()
	cp := items.Clone()
	cp[1].SetWeight(3)
	if *items[1].Weight != 1.2 {
		t.Fatalf("clone must not share weight storage")
	}
	changed := cp.Changed(before)
	if len(changed) != 1 || changed["5ab8ebf2d8ce87001c0fa8fb"] != 3 {
		t.Fatalf("unexpected changed set: %v", changed)
	}
}
