package adjuster

import (
	"fmt"
	"log/slog"

	"github.com/xtding233/custom-weight/internal/config"
	"github.com/xtding233/custom-weight/internal/percent"
	"github.com/xtding233/custom-weight/internal/stamina"
)

// RescaleThresholds moves the dependent overweight thresholds from the
// current base anchors to the configured ones, then replaces the anchors.
// Low values follow the light anchor, high values the heavy anchor.
// On error current is returned unchanged.
func RescaleThresholds(current stamina.Limits, p config.PlayerLimits) (stamina.Limits, error) {
	oldLight, oldHeavy := current.Light(), current.Heavy()
	out := current

	targets := []struct {
		name   string
		field  *float64
		anchor float64
		next   float64
	}{
		{"WalkOverweightLimits.x", &out.WalkOverweightLimits.X, oldLight, p.LightOverweight},
		{"WalkOverweightLimits.y", &out.WalkOverweightLimits.Y, oldHeavy, p.HeavyOverweight},
		{"WalkSpeedOverweightLimits.x", &out.WalkSpeedOverweightLimits.X, oldLight, p.LightOverweight},
		{"WalkSpeedOverweightLimits.y", &out.WalkSpeedOverweightLimits.Y, oldHeavy, p.HeavyOverweight},
		{"SprintOverweightLimits.y", &out.SprintOverweightLimits.Y, oldHeavy, p.HeavyOverweight},
	}
	for _, t := range targets {
		v, err := percent.ProportionalRescale(t.anchor, *t.field, t.next)
		if err != nil {
			return current, fmt.Errorf("rescale %s: %w", t.name, err)
		}
		*t.field = v
	}

	// anchors last: dependents above must use the original ones
	out.BaseOverweightLimits.X = p.LightOverweight
	out.BaseOverweightLimits.Y = p.HeavyOverweight
	return out, nil
}

// AdjustStamina rescales l in place using the configured player limits.
// It does nothing when the config has no player section.
func (a *Adjuster) AdjustStamina(l *stamina.Limits) error {
	if a.cfg.Player == nil || l == nil {
		return nil
	}
	next, err := RescaleThresholds(*l, *a.cfg.Player)
	if err != nil {
		a.log.Error("Player overweight limits were not adjusted.", slog.Any("error", err))
		return err
	}
	a.log.Debug("Player overweight limits rescaled.",
		slog.Any("walk", next.WalkOverweightLimits),
		slog.Any("walk_speed", next.WalkSpeedOverweightLimits),
		slog.Any("sprint", next.SprintOverweightLimits))
	a.log.Info(fmt.Sprintf("Player overweight limits changed from %g/%gkg to %g/%gkg.",
		l.Light(), l.Heavy(), next.Light(), next.Heavy()))
	*l = next
	return nil
}
