package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "movierec"

// Query engines.
const (
	EngineMemory = "memory"
	EngineSQLite = "sqlite"
)

const (
	defaultDataFile = "movies.csv"
	defaultLimit    = 5
)

type Config struct {
	DataFile string    `koanf:"data_file"` // CSV path, ~ expanded
	Limit    int       `koanf:"limit"`     // top-N size (default: 5)
	Engine   string    `koanf:"engine"`    // "memory" or "sqlite"
	Log      LogConfig `koanf:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level"` // trace, debug, info, warn, error, disabled
	File  string `koanf:"file"`  // empty = XDG state dir, "-" = stderr
}

// Load reads the config files in priority order (last wins) and applies
// defaults. Missing files are skipped.
func Load() (*Config, error) {
	return LoadFiles(getConfigPaths()...)
}

// LoadFiles is Load over an explicit list of paths.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		DataFile: defaultDataFile,
		Limit:    defaultLimit,
		Engine:   EngineMemory,
		Log:      LogConfig{Level: "info"},
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize expands paths and replaces out-of-range values with defaults.
// Call it again after applying command-line overrides.
func (c *Config) Normalize() {
	if c.DataFile == "" {
		c.DataFile = defaultDataFile
	}
	c.DataFile = expandPath(c.DataFile)
	if c.Log.File != "" {
		c.Log.File = expandPath(c.Log.File)
	}
	if c.Limit <= 0 {
		c.Limit = defaultLimit
	}
	c.Engine = strings.ToLower(strings.TrimSpace(c.Engine))
	if c.Engine == "" {
		c.Engine = EngineMemory
	}
}

// Validate reports settings that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Engine {
	case EngineMemory, EngineSQLite:
		return nil
	default:
		return fmt.Errorf("engine must be %q or %q, got %q", EngineMemory, EngineSQLite, c.Engine)
	}
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/movierec/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
