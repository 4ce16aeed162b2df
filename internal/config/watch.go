package config

import (
	"context"
	"os"
	"time"
)

// Watcher polls file modification times and calls onChange for each file that
// changed since the previous scan.
type Watcher struct {
	paths     []string
	interval  time.Duration
	onChange  func(path string)
	lastMTime map[string]time.Time
}

// NewWatcher creates a watcher for the given paths.
func NewWatcher(paths []string, interval time.Duration, onChange func(string)) *Watcher {
	if interval <= 0 {
		interval = time.Second
	}
	return &Watcher{
		paths:     append([]string(nil), paths...),
		interval:  interval,
		onChange:  onChange,
		lastMTime: make(map[string]time.Time),
	}
}

// Run polls until ctx is done. Callbacks run on the caller's goroutine, one at a time.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.scan(true)
	for {
		select {
		case <-ticker.C:
			w.scan(false)
		case <-ctx.Done():
			return
		}
	}
}

// scan records mtimes; when prime is false, changed files trigger onChange.
func (w *Watcher) scan(prime bool) {
	for _, p := range w.paths {
		fi, err := os.Stat(p)
		if err != nil {
			// missing file: keep the last known mtime
			continue
		}
		mt := fi.ModTime()
		last, seen := w.lastMTime[p]
		w.lastMTime[p] = mt
		if prime || !seen || !mt.After(last) {
			continue
		}
		if w.onChange != nil {
			w.onChange(p)
		}
	}
}
