// Package config loads, validates and normalizes the weight-adjustment rules.
package config

// RawConfig is the file schema. Required scalars are pointers so a missing key
// can be told apart from a zero value.
type RawConfig struct {
	General GeneralConfig `yaml:"general" toml:"general" json:"general"`
	Item    *ItemConfig   `yaml:"item" toml:"item" json:"item"`
	Player  *PlayerConfig `yaml:"player,omitempty" toml:"player,omitempty" json:"player,omitempty"`
}

type GeneralConfig struct {
	Enabled *bool `yaml:"enabled" toml:"enabled" json:"enabled"`
	Debug   *bool `yaml:"debug" toml:"debug" json:"debug"`
}

// ItemConfig decodes percentages as floats so fractional values reach
// validation instead of being truncated by the decoder.
type ItemConfig struct {
	Adjustment          *float64           `yaml:"adjustment" toml:"adjustment" json:"adjustment"`                            // whole percent, -99..300
	ParentAdjustments   map[string]float64 `yaml:"parentAdjustments" toml:"parentAdjustments" json:"parentAdjustments"`       // parent id -> whole percent
	SpecificAdjustments map[string]float64 `yaml:"specificAdjustments" toml:"specificAdjustments" json:"specificAdjustments"` // id or name -> absolute kg
	Blacklist           []string           `yaml:"blacklist" toml:"blacklist" json:"blacklist"`
}

type PlayerConfig struct {
	LightOverweight *float64 `yaml:"LightOverweight" toml:"LightOverweight" json:"LightOverweight"`
	HeavyOverweight *float64 `yaml:"HeavyOverweight" toml:"HeavyOverweight" json:"HeavyOverweight"`
}

// Config is the normalized, read-only rule set used by the adjuster.
type Config struct {
	Enabled bool
	Debug   bool
	Item    ItemRules
	Player  *PlayerLimits // nil when the file has no player section
}

type ItemRules struct {
	Adjustment          int
	ParentAdjustments   map[string]int
	SpecificAdjustments map[string]float64
	Blacklist           Set
}

// PlayerLimits are the new overweight anchors in kg.
type PlayerLimits struct {
	LightOverweight float64
	HeavyOverweight float64
}

// Rule bounds.
const (
	MinPercent  = -99
	MaxPercent  = 300
	MinSpecific = 0
	MaxSpecific = 300
)

// Set is a membership-only collection of item ids or names.
type Set map[string]struct{}

// NewSet builds a Set from the given keys.
func NewSet(keys ...string) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether k is in the set.
func (s Set) Has(k string) bool {
	_, ok := s[k]
	return ok
}

// Specific looks up an absolute override by name first, then by id.
func (r ItemRules) Specific(id, name string) (float64, bool) {
	if v, ok := r.SpecificAdjustments[name]; ok {
		return v, true
	}
	v, ok := r.SpecificAdjustments[id]
	return v, ok
}

// Blacklisted reports whether the item is excluded by id or name.
func (r ItemRules) Blacklisted(id, name string) bool {
	return r.Blacklist.Has(id) || r.Blacklist.Has(name)
}
