// Package plugin is the host-facing entry point: a Load phase that reads and
// validates the rules, and an Apply phase that runs them over host data.
package plugin

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/xtding233/custom-weight/internal/adjuster"
	"github.com/xtding233/custom-weight/internal/catalog"
	"github.com/xtding233/custom-weight/internal/config"
	"github.com/xtding233/custom-weight/internal/lint"
	"github.com/xtding233/custom-weight/internal/stamina"
)

var ErrNotLoaded = errors.New("plugin: config not loaded")

// Host exposes the data the mod adjusts. Both values are mutated in place.
type Host interface {
	Items() catalog.Catalog
	// Stamina returns nil when the host has no player limits to adjust.
	Stamina() *stamina.Limits
}

// Plugin holds one loaded config.
type Plugin struct {
	cfg *config.Config
	log *slog.Logger
}

// Load reads the config at path and applies overrides. A disabled config is
// not an error: the returned plugin is inactive and Apply does nothing.
func Load(loader *config.Loader, path string, o config.Overrides, log *slog.Logger) (*Plugin, error) {
	if log == nil {
		log = slog.Default()
	}
	cfg, err := loader.Load(path)
	if err != nil {
		log.Error("Config failed to load or validate.", slog.Any("error", err))
		return nil, err
	}
	if !o.IsZero() {
		if cfg, err = o.Apply(cfg); err != nil {
			log.Error("Config override rejected.", slog.Any("error", err))
			return nil, err
		}
	}
	if !cfg.Enabled {
		log.Info("CustomWeight is disabled in the config file. No changes to item weight will be made.")
	}
	return &Plugin{cfg: cfg, log: log}, nil
}

// New wraps an already validated config.
func New(cfg *config.Config, log *slog.Logger) *Plugin {
	if log == nil {
		log = slog.Default()
	}
	return &Plugin{cfg: cfg, log: log}
}

// Active reports whether Apply will change anything.
func (p *Plugin) Active() bool { return p != nil && p.cfg != nil && p.cfg.Enabled }

// Config returns the loaded config.
func (p *Plugin) Config() *config.Config { return p.cfg }

// Apply runs the adjuster over the host's items and, when both the config and
// the host provide them, the player overweight limits.
func (p *Plugin) Apply(h Host) (adjuster.Report, error) {
	if p == nil || p.cfg == nil {
		return adjuster.Report{}, ErrNotLoaded
	}
	if !p.cfg.Enabled {
		return adjuster.Report{}, nil
	}

	runID := uuid.NewString()
	log := p.log.With(slog.String("run", runID))

	items := h.Items()
	for _, f := range lint.Unmatched(p.cfg, items) {
		attrs := []any{slog.String("table", f.Table), slog.String("key", f.Key)}
		if f.Suggestion != "" {
			attrs = append(attrs, slog.String("did_you_mean", f.Suggestion))
		}
		log.Warn("Config key matches no item.", attrs...)
	}

	adj := adjuster.New(p.cfg, log)
	rep := adj.AdjustCatalog(items)
	rep.RunID = runID

	if p.cfg.Player != nil {
		limits := h.Stamina()
		if limits == nil {
			log.Warn("Player overweight limits configured but the host has none. Skipping.")
			return rep, nil
		}
		if err := adj.AdjustStamina(limits); err != nil {
			return rep, fmt.Errorf("adjust stamina: %w", err)
		}
	}
	return rep, nil
}
