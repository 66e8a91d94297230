// Package config provides TOML-based configuration for squaremap.
//
// A config file seeds the CLI and server defaults; command-line flags
// override it. Example:
//
//	[layout]
//	width = 1200
//	height = 800
//	max_display = 40
//	mode = "light"
//
//	[render]
//	formats = ["svg", "png"]
//	style = "rounded"
//
//	[cache]
//	redis_url = "redis://localhost:6379/0"
//	ttl = "12h"
//
//	[server]
//	addr = ":8080"
//	mongo_uri = "mongodb://localhost:27017"
package config

import (
	"fmt"
	"time"

	"github.com/matzehuels/squaremap/pkg/pipeline"
)

// Config is the top-level configuration.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// LayoutConfig holds treemap layout defaults.
type LayoutConfig struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	MaxDisplay int     `toml:"max_display"`
	Mode       string  `toml:"mode"`
	Inset      float64 `toml:"inset"`
}

// RenderConfig holds output defaults.
type RenderConfig struct {
	Formats []string `toml:"formats"`
	Style   string   `toml:"style"`
	Scale   float64  `toml:"scale"`
	Links   bool     `toml:"links"`
}

// CacheConfig selects the cache backend. RedisURL wins over Dir.
type CacheConfig struct {
	Dir      string   `toml:"dir"`
	Disabled bool     `toml:"disabled"`
	RedisURL string   `toml:"redis_url"`
	TTL      Duration `toml:"ttl"`
}

// ServerConfig configures `squaremap serve`. Without MongoURI layouts are
// kept in memory.
type ServerConfig struct {
	Addr          string   `toml:"addr"`
	MongoURI      string   `toml:"mongo_uri"`
	MongoDatabase string   `toml:"mongo_database"`
	LayoutTTL     Duration `toml:"layout_ttl"`
}

// PipelineOptions converts the layout and render sections into pipeline
// options.
func (c *Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Width:      c.Layout.Width,
		Height:     c.Layout.Height,
		MaxDisplay: c.Layout.MaxDisplay,
		Mode:       c.Layout.Mode,
		Inset:      c.Layout.Inset,
		Formats:    append([]string(nil), c.Render.Formats...),
		Style:      c.Render.Style,
		Scale:      c.Render.Scale,
		Links:      c.Render.Links,
	}
}

// Validate checks the layout and render sections.
func (c *Config) Validate() error {
	opts := c.PipelineOptions()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Duration wraps time.Duration with TOML-friendly string parsing.
// Supports standard Go duration strings: "30s", "15m", "12h", etc.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
