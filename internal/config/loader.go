package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrEmpty             = errors.New("config file is empty")
)

// DefaultCacheSize is the number of config files kept decoded by a Loader.
const DefaultCacheSize = 16

// Loader reads config files, validates them and caches the normalized result
// per path until Invalidate is called.
type Loader struct {
	cache *lru.Cache // path -> *Config
}

// NewLoader creates a loader keeping at most size decoded files.
func NewLoader(size int) (*Loader, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("config cache: %w", err)
	}
	return &Loader{cache: c}, nil
}

// Load returns the validated, normalized config stored at path. The returned
// value is shared with the cache and must be treated as read-only.
func (l *Loader) Load(path string) (*Config, error) {
	key := filepath.Clean(path)
	if v, ok := l.cache.Get(key); ok {
		return v.(*Config), nil
	}

	raw, err := ReadRaw(key)
	if err != nil {
		return nil, err
	}
	if err := ValidateRaw(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	cfg := Normalize(raw)
	l.cache.Add(key, cfg)
	return cfg, nil
}

// Invalidate clears the loader's cache. Call after the watcher detects changes.
func (l *Loader) Invalidate() {
	l.cache.Purge()
}

// ReadRaw decodes the file at path without validating it. The decoder is
// picked by extension: .yaml/.yml, .toml or .json. Unknown keys are errors.
func ReadRaw(path string) (RawConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return RawConfig{}, fmt.Errorf("read config: %w", err)
	}
	raw, err := Decode(b, formatOf(path))
	if err != nil {
		return RawConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return raw, nil
}

// Format names a supported config encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	}
	return Format(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Decode parses b in the given format into a RawConfig.
func Decode(b []byte, f Format) (RawConfig, error) {
	var cfg RawConfig
	if len(bytes.TrimSpace(b)) == 0 {
		return cfg, ErrEmpty
	}
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return RawConfig{}, err
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return RawConfig{}, err
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return RawConfig{}, err
		}
	default:
		return RawConfig{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	return cfg, nil
}
