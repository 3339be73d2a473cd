// Package config centralizes runtime configuration for the HTTP surface
// and CLI: listen address, edge-store path, request defaults and log
// setup, layered from defaults, an optional YAML file, and environment
// overrides.
package config

import "fmt"

// Config is the root configuration tree, unmarshaled by Loader from
// koanf's merged key/value store.
type Config struct {
	HTTP  HTTPConfig  `koanf:"http"`
	Store StoreConfig `koanf:"store"`
	Flow  FlowConfig  `koanf:"flow"`
	Log   LogConfig   `koanf:"log"`
}

// HTTPConfig configures the JSON API surface.
type HTTPConfig struct {
	ListenAddr string `koanf:"listen_addr"`
}

// StoreConfig configures the edge store backing a running process.
type StoreConfig struct {
	// BoltPath is the bbolt database file. It is loaded but no command
	// opens it: serve computes from request bodies, and flowctl flow and
	// import take the database file from their --db flag.
	BoltPath string `koanf:"bolt_path"`
}

// FlowConfig holds request defaults loaded from configuration. Neither
// httpapi nor cmd/flowctl reads them: a request or command that omits
// max_distance or max_transfers runs unbounded regardless of these values.
type FlowConfig struct {
	// MaxDistance is the default participant-hop bound; 0 means unlimited.
	MaxDistance uint64 `koanf:"max_distance"`
	// MaxTransfers is the default transfer-count cap; 0 means unlimited.
	MaxTransfers uint64 `koanf:"max_transfers"`
}

// LogConfig configures logging.Init.
type LogConfig struct {
	Level      string `koanf:"level"`       // debug, info, warn, error
	Format     string `koanf:"format"`      // json, text
	Output     string `koanf:"output"`      // stdout, stderr, file
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"`    // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"`     // days
	Compress   bool   `koanf:"compress"`
}

// Validate checks invariants Load cannot enforce by construction alone.
func (c *Config) Validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("config: log.level must be one of debug/info/warn/error, got %q", c.Log.Level)
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("config: log.format must be one of json/text, got %q", c.Log.Format)
	}
	return nil
}
