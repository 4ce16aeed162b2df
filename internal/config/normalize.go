package config

import "maps"

// Normalize turns a validated RawConfig into a Config. Call ValidateRaw first.
func Normalize(raw RawConfig) *Config {
	cfg := &Config{
		Enabled: deref(raw.General.Enabled),
		Debug:   deref(raw.General.Debug),
		Item: ItemRules{
			ParentAdjustments:   map[string]int{},
			SpecificAdjustments: map[string]float64{},
			Blacklist:           Set{},
		},
	}
	if raw.Item != nil {
		cfg.Item.Adjustment = int(deref(raw.Item.Adjustment))
		for k, v := range raw.Item.ParentAdjustments {
			cfg.Item.ParentAdjustments[k] = int(v)
		}
		maps.Copy(cfg.Item.SpecificAdjustments, raw.Item.SpecificAdjustments)
		cfg.Item.Blacklist = NewSet(raw.Item.Blacklist...)
	}
	if raw.Player != nil {
		cfg.Player = &PlayerLimits{
			LightOverweight: deref(raw.Player.LightOverweight),
			HeavyOverweight: deref(raw.Player.HeavyOverweight),
		}
	}
	return cfg
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
