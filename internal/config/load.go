package config

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/squaremap/pkg/pipeline"
	"github.com/matzehuels/squaremap/pkg/store"
)

const appName = "squaremap"

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/squaremap/config.toml
//  2. ~/.config/squaremap/config.toml
//
// If no file exists, returns DefaultConfig() with environment overrides.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader. Keys absent from
// the document keep their defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	d := pipeline.DefaultOptions()
	cacheDir, _ := CacheDir()

	return &Config{
		Layout: LayoutConfig{
			Width:      d.Width,
			Height:     d.Height,
			MaxDisplay: d.MaxDisplay,
			Mode:       d.Mode,
			Inset:      d.Inset,
		},
		Render: RenderConfig{
			Formats: d.Formats,
			Style:   d.Style,
			Scale:   d.Scale,
		},
		Cache: CacheConfig{
			Dir: cacheDir,
		},
		Server: ServerConfig{
			Addr:          ":8080",
			MongoDatabase: store.DefaultDatabase,
			LayoutTTL:     Duration{store.DefaultTTL},
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SQUAREMAP_MODE"); v != "" {
		cfg.Layout.Mode = v
	}
	if v := os.Getenv("SQUAREMAP_STYLE"); v != "" {
		cfg.Render.Style = v
	}
	if v := os.Getenv("SQUAREMAP_CACHE_DIR"); v != "" {
		cfg.Cache.Dir = v
	}
	if v := os.Getenv("SQUAREMAP_NO_CACHE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Cache.Disabled = b
		}
	}
	if v := os.Getenv("SQUAREMAP_REDIS_URL"); v != "" {
		cfg.Cache.RedisURL = v
	}
	if v := os.Getenv("SQUAREMAP_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("SQUAREMAP_MONGO_URI"); v != "" {
		cfg.Server.MongoURI = v
	}
}

// Path returns the first config path Load would read, whether or not it
// exists.
func Path() string {
	return configSearchPaths()[0]
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, appName, "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, appName, "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// CacheDir returns the default cache directory: $XDG_CACHE_HOME/squaremap,
// else ~/.cache/squaremap.
func CacheDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil && os.Getenv("XDG_CACHE_HOME") == "" {
		return "", err
	}
	return filepath.Join(xdgCacheHome(home), appName), nil
}

// xdgCacheHome returns XDG_CACHE_HOME or ~/.cache as fallback.
func xdgCacheHome(home string) string {
	if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".cache")
}
