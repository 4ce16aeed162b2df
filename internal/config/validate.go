package config

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var ErrInvalid = errors.New("config validation failed")

// ValidateRaw checks semantic constraints of a RawConfig.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	// general
	if cfg.General.Enabled == nil {
		errs = append(errs, "general.enabled is required")
	}
	if cfg.General.Debug == nil {
		errs = append(errs, "general.debug is required")
	}

	// item
	if cfg.Item == nil {
		errs = append(errs, "item section is required")
	} else {
		if cfg.Item.Adjustment == nil {
			errs = append(errs, "item.adjustment is required")
		} else if !percentOK(*cfg.Item.Adjustment) {
			errs = append(errs, fmt.Sprintf("item.adjustment must be an integer in [%d,%d]", MinPercent, MaxPercent))
		}
		for _, k := range sortedKeys(cfg.Item.ParentAdjustments) {
			if k == "" {
				errs = append(errs, "item.parentAdjustments keys must not be empty")
			}
			if !percentOK(cfg.Item.ParentAdjustments[k]) {
				errs = append(errs, fmt.Sprintf("item.parentAdjustments[%q] must be an integer in [%d,%d]", k, MinPercent, MaxPercent))
			}
		}
		for _, k := range sortedKeys(cfg.Item.SpecificAdjustments) {
			v := cfg.Item.SpecificAdjustments[k]
			if k == "" {
				errs = append(errs, "item.specificAdjustments keys must not be empty")
			}
			if math.IsNaN(v) || v < MinSpecific || v > MaxSpecific {
				errs = append(errs, fmt.Sprintf("item.specificAdjustments[%q] must be in [%d,%d]", k, MinSpecific, MaxSpecific))
			}
		}
		for i, b := range cfg.Item.Blacklist {
			if strings.TrimSpace(b) == "" {
				errs = append(errs, fmt.Sprintf("item.blacklist[%d] must not be empty", i))
			}
		}
	}

	// player (optional)
	if cfg.Player != nil {
		light, heavy := cfg.Player.LightOverweight, cfg.Player.HeavyOverweight
		if light == nil {
			errs = append(errs, "player.LightOverweight is required when player is set")
		} else if !anchorOK(*light) {
			errs = append(errs, "player.LightOverweight must be a finite number > 0")
		}
		if heavy == nil {
			errs = append(errs, "player.HeavyOverweight is required when player is set")
		} else if !anchorOK(*heavy) {
			errs = append(errs, "player.HeavyOverweight must be a finite number > 0")
		}
		if light != nil && heavy != nil && anchorOK(*light) && anchorOK(*heavy) && *light >= *heavy {
			errs = append(errs, "player.LightOverweight must be < player.HeavyOverweight")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
	}
	return nil
}

func percentInRange(p int) bool { return p >= MinPercent && p <= MaxPercent }

// percentOK accepts whole numbers only; NaN fails the Trunc comparison.
func percentOK(v float64) bool {
	return v == math.Trunc(v) && v >= MinPercent && v <= MaxPercent
}

func anchorOK(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
