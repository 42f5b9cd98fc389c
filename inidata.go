// Package inidata loads SAGE-style INI game-definition files into a typed
// aggregation context.
//
// The textual format is line-oriented and block-structured: top-level blocks
// ("Object", "Weapon", "Armor", ...) introduce typed records whose fields are
// parsed against per-type field tables. Parsing is strict: the first lexical
// or structural error aborts the load and carries a file:line:column
// position.
//
// Example:
//
//	data, err := inidata.Load(
//	    inidata.MustDirTree("Data/INI"),
//	    inidata.WithLogger(slog.Default()),
//	)
package inidata

import (
	"errors"
	"log/slog"

	"github.com/sageforge/inidata/gamedata"
	"github.com/sageforge/inidata/ini"
)

// ErrNoSources is returned when Load is called with no sources.
var ErrNoSources = errors.New("no definition sources provided")

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-token iteration logging.
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = ini.LevelTrace

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	logger  *slog.Logger
	version ini.Version
}

func defaultLoadConfig() loadConfig {
	return loadConfig{version: gamedata.VersionZeroHour}
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) LoadOption {
	return func(c *loadConfig) { c.logger = logger }
}

// WithVersion sets the active data revision for version-gated fields.
// The default is the latest revision.
func WithVersion(v ini.Version) LoadOption {
	return func(c *loadConfig) { c.version = v }
}

// Load parses every definition file from the source and returns the merged
// aggregation context. Files are parsed concurrently, each with its own
// parser; records from files later in sorted path order override earlier
// records of the same name. Use Multi() to combine multiple sources.
func Load(source Source, opts ...LoadOption) (*gamedata.GameData, error) {
	cfg := defaultLoadConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if source == nil {
		return nil, ErrNoSources
	}
	return loadAll(source, cfg)
}

// ParseBytes parses one definition source unit into a fresh aggregation
// context. The file name is used for diagnostics only.
func ParseBytes(file string, content []byte, opts ...LoadOption) (*gamedata.GameData, error) {
	cfg := defaultLoadConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return parseOne(file, content, cfg)
}
