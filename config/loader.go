package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "FLOWENGINE_"

// Loader layers configuration from defaults, an optional YAML file and
// environment variables, in that order of increasing priority.
type Loader struct {
	k          *koanf.Koanf
	configPath string
	envPrefix  string
}

// NewLoader builds a Loader with configPath as the YAML file to try
// (ignored if it does not exist) and envPrefix as the environment
// variable prefix (e.g. FLOWENGINE_HTTP_LISTEN_ADDR -> http.listen_addr).
func NewLoader(configPath string) *Loader {
	return &Loader{
		k:          koanf.New("."),
		configPath: configPath,
		envPrefix:  envPrefix,
	}
}

// Load runs the full defaults -> file -> env pipeline and returns a
// validated Config.
func (l *Loader) Load() (*Config, error) {
	if err := l.loadDefaults(); err != nil {
		return nil, fmt.Errorf("config: loading defaults: %w", err)
	}
	if err := l.loadConfigFile(); err != nil {
		return nil, fmt.Errorf("config: loading %s: %w", l.configPath, err)
	}
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("config: loading environment: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (l *Loader) loadDefaults() error {
	defaults := map[string]any{
		"http.listen_addr":  ":8080",
		"store.bolt_path":   "",
		"flow.max_distance": uint64(0),
		"flow.max_transfers": uint64(0),
		"log.level":         "info",
		"log.format":        "json",
		"log.output":        "stdout",
		"log.file_path":     "logs/flowengine.log",
		"log.max_size":      100,
		"log.max_backups":   3,
		"log.max_age":       7,
		"log.compress":      true,
	}
	return l.k.Load(confmap.Provider(defaults, "."), nil)
}

func (l *Loader) loadConfigFile() error {
	if l.configPath == "" {
		return nil
	}
	if _, err := os.Stat(l.configPath); err != nil {
		// A missing optional file is not an error; an unreadable present
		// one is.
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return l.k.Load(file.Provider(l.configPath), yaml.Parser())
}

func (l *Loader) loadEnv() error {
	return l.k.Load(env.Provider(l.envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, l.envPrefix)), "_", ".", 1)
	}), nil)
}

// Load is a convenience wrapper loading configPath (if non-empty) with
// the default FLOWENGINE_ environment prefix.
func Load(configPath string) (*Config, error) {
	return NewLoader(configPath).Load()
}
