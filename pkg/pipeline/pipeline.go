// Package pipeline provides the core treemap pipeline for squaremap.
//
// This package implements the complete load → layout → render pipeline used
// by the CLI and the HTTP API, so both entry points share validation,
// defaults and caching.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Decode and prepare items from JSON, TOML or YAML
//  2. Layout: Partition the canvas into tiles (see package treemap)
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON, text)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.DefaultOptions()
//	opts.Formats = []string{"svg", "png"}
//	result, err := runner.Execute(ctx, items, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/squaremap/pkg/cache"
	"github.com/matzehuels/squaremap/pkg/errors"
	"github.com/matzehuels/squaremap/pkg/render/styles"
	"github.com/matzehuels/squaremap/pkg/treemap"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600.0

	// DefaultStyle is the default visual style.
	DefaultStyle = "flat"

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatText = "txt"
)

// ValidFormats lists the supported output formats in display order.
var ValidFormats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatText}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the treemap pipeline.
// This struct supports JSON serialization for API requests.
//
// MaxDisplay and Inset have meaningful zero values (no cap, no gutter), so
// callers start from DefaultOptions rather than the zero value.
type Options struct {
	// Layout options
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	MaxDisplay int     `json:"max_display"`
	Mode       string  `json:"mode,omitempty"`
	Inset      float64 `json:"inset"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Links   bool     `json:"links,omitempty"`

	// Refresh bypasses cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// DefaultOptions returns options with every default applied.
func DefaultOptions() Options {
	return Options{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		MaxDisplay: treemap.DefaultMaxDisplay,
		Mode:       string(treemap.ModeDark),
		Inset:      treemap.DefaultInset,
		Formats:    []string{FormatSVG},
		Style:      DefaultStyle,
		Scale:      DefaultScale,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ItemsHash is the content hash of the prepared items.
	ItemsHash string

	// Layout is the computed treemap.
	Layout treemap.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and quality information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount   int
	TileCount   int
	WorstAspect float64
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(ValidFormats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	_, err := styles.Lookup(style)
	return err
}

// ValidateMode checks that a presentation mode is valid.
func ValidateMode(mode string) error {
	if !treemap.Mode(mode).Valid() {
		return errors.New(errors.ErrCodeInvalidMode, "invalid mode: %q (must be one of: dark, light)", mode)
	}
	return nil
}

// ParseFormats splits a comma-separated format list, dropping blanks and
// duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults for the full
// pipeline.
func (o *Options) ValidateAndSetDefaults() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// SetLayoutDefaults fills unset layout fields.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Mode == "" {
		o.Mode = string(treemap.ModeDark)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := errors.ValidateCanvas(o.Width, o.Height); err != nil {
		return err
	}
	if err := errors.ValidateMaxDisplay(o.MaxDisplay); err != nil {
		return err
	}
	if err := errors.ValidateInset(o.Inset); err != nil {
		return err
	}
	return ValidateMode(o.Mode)
}

// SetRenderDefaults fills unset render fields.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if !(o.Scale > 0) || o.Scale > 8 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be in (0, 8], got %g", o.Scale)
	}
	return ValidateStyle(o.Style)
}

// LayoutOptions converts the layout fields into treemap build options.
func (o *Options) LayoutOptions() []treemap.Option {
	return []treemap.Option{
		treemap.WithMaxDisplay(o.MaxDisplay),
		treemap.WithMode(treemap.Mode(o.Mode)),
		treemap.WithInset(o.Inset),
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:      o.Width,
		Height:     o.Height,
		MaxDisplay: o.MaxDisplay,
		Mode:       o.Mode,
		Inset:      o.Inset,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Style: o.Style, Links: o.Links}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}

func (o Options) String() string {
	return fmt.Sprintf("%gx%g max=%d mode=%s inset=%g formats=%v style=%s",
		o.Width, o.Height, o.MaxDisplay, o.Mode, o.Inset, o.Formats, o.Style)
}
