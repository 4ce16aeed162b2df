// Package logging provides the colored line handler used for all mod output.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
	colorGray   = "\033[90m"
)

// DefaultPrefix tags every line written by the handler.
const DefaultPrefix = "CustomWeight"

// Options configures a Handler.
type Options struct {
	Level   slog.Leveler // minimum level, default Info
	NoColor bool
	Prefix  string // default DefaultPrefix
}

// Handler writes one colored line per record:
//
//	[CustomWeight] [15:04:05] [INFO] message key=value
type Handler struct {
	opts   Options
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	groups []string
}

// NewHandler creates a handler writing to w (stdout when nil).
func NewHandler(w io.Writer, opts Options) *Handler {
	if w == nil {
		w = os.Stdout
	}
	if opts.Level == nil {
		opts.Level = slog.LevelInfo
	}
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	return &Handler{opts: opts, mu: &sync.Mutex{}, w: w}
}

// New returns a logger backed by a new Handler.
func New(w io.Writer, opts Options) *slog.Logger {
	return slog.New(NewHandler(w, opts))
}

// LevelFor maps the config debug flag to a minimum level.
func LevelFor(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cp := *h
	cp.attrs = append(append([]slog.Attr(nil), h.attrs...), h.qualify(attrs)...)
	return &cp
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	cp := *h
	cp.groups = append(append([]string(nil), h.groups...), name)
	return &cp
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	color, text := levelStyle(r.Level)

	var sb strings.Builder
	sb.WriteString(h.paint(colorWhite))
	fmt.Fprintf(&sb, "[%s] [%s] ", h.opts.Prefix, timestamp(r.Time))
	sb.WriteString("[" + h.paint(color) + text + h.paint(colorWhite) + "] ")
	sb.WriteString(h.paint(color))
	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&sb, a)
	}
	var extra []slog.Attr
	r.Attrs(func(a slog.Attr) bool {
		extra = append(extra, a)
		return true
	})
	for _, a := range h.qualify(extra) {
		writeAttr(&sb, a)
	}
	sb.WriteString(h.paint(colorReset))
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

func (h *Handler) paint(color string) string {
	if h.opts.NoColor {
		return ""
	}
	return color
}

// qualify prefixes attribute keys with the open groups.
func (h *Handler) qualify(attrs []slog.Attr) []slog.Attr {
	if len(h.groups) == 0 {
		return attrs
	}
	prefix := strings.Join(h.groups, ".") + "."
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: prefix + a.Key, Value: a.Value}
	}
	return out
}

func writeAttr(sb *strings.Builder, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, g := range a.Value.Group() {
			writeAttr(sb, slog.Attr{Key: a.Key + "." + g.Key, Value: g.Value})
		}
		return
	}
	fmt.Fprintf(sb, " %s=%v", a.Key, a.Value)
}

func levelStyle(l slog.Level) (color, text string) {
	switch {
	case l >= slog.LevelError:
		return colorRed, "ERROR"
	case l >= slog.LevelWarn:
		return colorYellow, "WARN"
	case l >= slog.LevelInfo:
		return colorCyan, "INFO"
	default:
		return colorGray, "DEBUG"
	}
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Format("15:04:05")
}
