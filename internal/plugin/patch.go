package plugin

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/xtding233/custom-weight/internal/stamina"
)

// Patch is what a run changed, ready for the host to apply.
type Patch struct {
	Items   map[string]float64 `json:"items" yaml:"items"` // item id -> new weight
	Stamina *stamina.Limits    `json:"stamina,omitempty" yaml:"stamina,omitempty"`
}

// WritePatch writes p as YAML for .yaml/.yml paths and as indented JSON otherwise.
func WritePatch(path string, p Patch) error {
	var (
		b   []byte
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err = yaml.Marshal(p)
	default:
		b, err = json.MarshalIndent(p, "", "  ")
		b = append(b, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode patch: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write patch: %w", err)
	}
	return nil
}
