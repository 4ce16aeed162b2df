// Command customweight applies weight rules to a host item catalog file and
// writes the resulting weight patch.
//
// Usage:
//
//	customweight -config config/config.yaml -items items.json [-globals globals.json] [-out patch.json]
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xtding233/custom-weight/internal/catalog"
	"github.com/xtding233/custom-weight/internal/config"
	"github.com/xtding233/custom-weight/internal/logging"
	"github.com/xtding233/custom-weight/internal/plugin"
	"github.com/xtding233/custom-weight/internal/stamina"
)

// fileHost serves host data read from disk.
type fileHost struct {
	items   catalog.Catalog
	stamina *stamina.Limits
}

func (h *fileHost) Items() catalog.Catalog { return h.items }
func (h *fileHost) Stamina() *stamina.Limits { return h.stamina }

type options struct {
	configPath  string
	itemsPath   string
	globalsPath string
	outPath     string
	overrides   config.Overrides
}

func main() {
	var (
		opts     options
		enabled  bool
		debug    bool
		adjust   int
		noColor  bool
		watch    bool
		interval time.Duration
	)
	flag.StringVar(&opts.configPath, "config", "config/config.yaml", "path to config (.yaml, .toml or .json)")
	flag.StringVar(&opts.itemsPath, "items", "", "path to the host item templates (json)")
	flag.StringVar(&opts.globalsPath, "globals", "", "optional path to the host globals holding stamina limits (json)")
	flag.StringVar(&opts.outPath, "out", "", "optional path for the weight patch (.json or .yaml)")
	flag.BoolVar(&enabled, "enabled", true, "override general.enabled")
	flag.BoolVar(&debug, "debug", false, "override general.debug")
	flag.IntVar(&adjust, "adjustment", 0, "override item.adjustment (percent)")
	flag.BoolVar(&noColor, "no-color", false, "disable colored output")
	flag.BoolVar(&watch, "watch", false, "re-run whenever the config file changes")
	flag.DurationVar(&interval, "interval", 2*time.Second, "poll interval for -watch")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "enabled":
			opts.overrides.Enabled = &enabled
		case "debug":
			opts.overrides.Debug = &debug
		case "adjustment":
			opts.overrides.Adjustment = &adjust
		}
	})

	level := new(slog.LevelVar)
	log := logging.New(os.Stdout, logging.Options{Level: level, NoColor: noColor})
	slog.SetDefault(log)

	if opts.itemsPath == "" {
		log.Error("Missing -items path.")
		os.Exit(2)
	}

	loader, err := config.NewLoader(config.DefaultCacheSize)
	if err != nil {
		log.Error("Failed to create config loader.", slog.Any("error", err))
		os.Exit(1)
	}

	if !watch {
		if err := run(loader, opts, level, log); err != nil {
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = run(loader, opts, level, log)
	w := config.NewWatcher([]string{opts.configPath}, interval, func(path string) {
		log.Info("Config changed. Re-running.", slog.String("path", path))
		loader.Invalidate()
		_ = run(loader, opts, level, log)
	})
	log.Info("Watching config for changes.", slog.String("path", opts.configPath), slog.Duration("interval", interval))
	w.Run(ctx)
	log.Info("Stopped.")
}

// run performs one load/apply cycle against freshly read host files.
func run(loader *config.Loader, opts options, level *slog.LevelVar, log *slog.Logger) error {
	p, err := plugin.Load(loader, opts.configPath, opts.overrides, log)
	if err != nil {
		return err
	}
	level.Set(logging.LevelFor(p.Config().Debug))
	if !p.Active() {
		return nil
	}

	host, err := loadHost(opts)
	if err != nil {
		log.Error("Failed to read host data.", slog.Any("error", err))
		return err
	}
	before := host.items.Weights()

	start := time.Now()
	rep, err := p.Apply(host)
	if err != nil {
		log.Error("Adjustment finished with errors.", slog.Any("error", err))
	}
	log.Debug("Pass complete.",
		slog.String("run", rep.RunID),
		slog.Int("items", len(host.items)),
		slog.Int("touched", rep.Touched()),
		slog.Int("blacklisted", rep.Blacklisted),
		slog.Int("weightless", rep.Weightless),
		slog.Duration("took", time.Since(start)))

	if opts.outPath == "" {
		return err
	}
	patch := plugin.Patch{Items: host.items.Changed(before)}
	if p.Config().Player != nil && err == nil {
		patch.Stamina = host.stamina
	}
	if werr := plugin.WritePatch(opts.outPath, patch); werr != nil {
		log.Error("Failed to write patch.", slog.Any("error", werr))
		return werr
	}
	log.Info("Patch written.", slog.String("path", opts.outPath), slog.Int("items", len(patch.Items)))
	return err
}

func loadHost(opts options) (*fileHost, error) {
	items, err := catalog.Load(opts.itemsPath)
	if err != nil {
		return nil, err
	}
	h := &fileHost{items: items}
	if opts.globalsPath != "" {
		l, err := stamina.Load(opts.globalsPath)
		if err != nil {
			return nil, err
		}
		h.stamina = &l
	}
	return h, nil
}
