// Package adjuster applies the configured weight rules to a host catalog and
// rescales the player's overweight thresholds.
package adjuster

import (
	"io"
	"log/slog"

	"github.com/xtding233/custom-weight/internal/catalog"
	"github.com/xtding233/custom-weight/internal/config"
	"github.com/xtding233/custom-weight/internal/percent"
)

// Adjuster runs the weight pass for one config. It holds no state between
// passes and is not safe for concurrent use on the same catalog.
type Adjuster struct {
	cfg *config.Config
	log *slog.Logger
}

// New creates an adjuster. A nil logger discards output.
func New(cfg *config.Config, log *slog.Logger) *Adjuster {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Adjuster{cfg: cfg, log: log}
}

// AdjustCatalog walks items once and mutates weights in place, tier by tier:
// blacklist, generic percentage, parent percentage, specific override.
func (a *Adjuster) AdjustCatalog(items catalog.Catalog) Report {
	var rep Report
	for _, it := range items {
		if it == nil {
			continue
		}
		a.adjustItem(it, &rep)
	}
	a.logSummary(rep)
	return rep
}

func (a *Adjuster) adjustItem(it *catalog.Item, rep *Report) {
	rules := a.cfg.Item

	if rules.Blacklisted(it.ID, it.Name) {
		rep.Blacklisted++
		a.debug("Item was found on the configuration blacklist. Skipping.", itemAttrs(it)...)
		return
	}
	if !it.HasWeight() {
		rep.Weightless++
		return
	}
	original := *it.Weight
	if !percent.IsFinite(original) || original < 0 {
		rep.Malformed++
		a.log.Warn("Item has an invalid weight. Skipping.", append(itemAttrs(it), slog.Float64("weight", original))...)
		return
	}

	// generic
	if w := percent.ApplyRelativePercentage(float64(rules.Adjustment), *it.Weight); w != *it.Weight {
		a.write(it, TierGeneric, w, rep)
		rep.Generic++
	}

	// parent and specific: credit only the tier that settles the final weight
	var settled Tier
	if pct, ok := rules.ParentAdjustments[it.ParentID]; ok {
		if w := percent.ApplyRelativePercentage(float64(pct), *it.Weight); w != *it.Weight {
			a.write(it, TierParent, w, rep)
			settled = TierParent
		}
	}
	if w, ok := rules.Specific(it.ID, it.Name); ok && w != *it.Weight {
		a.write(it, TierSpecific, w, rep)
		settled = TierSpecific
	}

	switch settled {
	case TierParent:
		rep.Parent++
	case TierSpecific:
		rep.Specific++
	}
}

func (a *Adjuster) write(it *catalog.Item, tier Tier, w float64, rep *Report) {
	old := *it.Weight
	it.SetWeight(w)
	rep.Changes = append(rep.Changes, Change{ID: it.ID, Name: it.Name, Tier: tier, Old: old, New: w})
	a.debug("Item weight adjusted via "+string(tier)+" modifier.",
		append(itemAttrs(it), slog.Float64("old", old), slog.Float64("new", w))...)
}

// debug emits per-item lines only when the config asks for them, whatever
// level the logger allows.
func (a *Adjuster) debug(msg string, args ...any) {
	if a.cfg.Debug {
		a.log.Debug(msg, args...)
	}
}

func (a *Adjuster) logSummary(rep Report) {
	if adj := a.cfg.Item.Adjustment; adj != 0 && rep.Generic > 0 {
		a.log.Info(plural(rep.Generic, "All %d item has", "All %d items have") +
			" had their weight adjusted by " + signedPercent(adj) + ".")
	}
	if rep.Parent > 0 {
		a.log.Info(plural(rep.Parent, "%d item has", "%d items have") +
			" had their weight adjusted due to their parent ID.")
	}
	if rep.Specific > 0 {
		a.log.Info(plural(rep.Specific, "%d item has", "%d items have") + " had a specific weight set.")
	}
	if rep.Malformed > 0 {
		a.log.Warn(plural(rep.Malformed, "%d item was", "%d items were") + " skipped due to an invalid weight.")
	}
}

func itemAttrs(it *catalog.Item) []any {
	return []any{slog.String("id", it.ID), slog.String("name", it.Name)}
}
