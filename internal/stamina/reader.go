package stamina

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

var (
	ErrInvalidJSON = errors.New("stamina: invalid json")
	ErrNotFound    = errors.New("stamina: overweight limits not found")
)

// searchPaths lists where the stamina block may live: inside the host's
// globals document or at the root of a standalone file.
var searchPaths = []string{"config.Stamina", "Stamina", "@this"}

// Parse extracts overweight limits from a globals document.
func Parse(data []byte) (Limits, error) {
	if !gjson.ValidBytes(data) {
		return Limits{}, ErrInvalidJSON
	}
	for _, p := range searchPaths {
		block := gjson.GetBytes(data, p)
		if !block.IsObject() || !block.Get("BaseOverweightLimits").Exists() {
			continue
		}
		return Limits{
			BaseOverweightLimits:      vector(block, "BaseOverweightLimits"),
			WalkOverweightLimits:      vector(block, "WalkOverweightLimits"),
			WalkSpeedOverweightLimits: vector(block, "WalkSpeedOverweightLimits"),
			SprintOverweightLimits:    vector(block, "SprintOverweightLimits"),
		}, nil
	}
	return Limits{}, ErrNotFound
}

func vector(block gjson.Result, name string) Vector {
	v := block.Get(name)
	return Vector{X: v.Get("x").Float(), Y: v.Get("y").Float()}
}

// Load reads overweight limits from a globals file.
func Load(path string) (Limits, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Limits{}, fmt.Errorf("read globals: %w", err)
	}
	l, err := Parse(b)
	if err != nil {
		return Limits{}, fmt.Errorf("parse globals %s: %w", path, err)
	}
	return l, nil
}
