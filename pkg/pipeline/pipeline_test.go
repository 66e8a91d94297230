package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/squaremap/pkg/cache"
	"github.com/matzehuels/squaremap/pkg/errors"
	"github.com/matzehuels/squaremap/pkg/observability"
	"github.com/matzehuels/squaremap/pkg/treemap"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"txt", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("empty formats should pass: %v", err)
	}
}

func TestValidateStyleAndMode(t *testing.T) {
	for _, s := range []string{"flat", "rounded"} {
		if err := ValidateStyle(s); err != nil {
			t.Errorf("ValidateStyle(%q) = %v", s, err)
		}
	}
	if err := ValidateStyle("handdrawn"); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("ValidateStyle(handdrawn) = %v", err)
	}
	if err := ValidateMode("light"); err != nil {
		t.Errorf("ValidateMode(light) = %v", err)
	}
	if err := ValidateMode("sepia"); !errors.Is(err, errors.ErrCodeInvalidMode) {
		t.Errorf("ValidateMode(sepia) = %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	got := ParseFormats(" svg, PNG,,svg ,json")
	if want := []string{"svg", "png", "json"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ParseFormats = %v, want %v", got, want)
	}
	if got := ParseFormats(""); got != nil {
		t.Errorf("ParseFormats(\"\") = %v, want nil", got)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("zero options: %v", err)
	}
	if o.Width != DefaultWidth || o.Height != DefaultHeight || o.Mode != "dark" || o.Style != DefaultStyle || o.Scale != DefaultScale {
		t.Errorf("defaults not applied: %s", o)
	}
	if !reflect.DeepEqual(o.Formats, []string{FormatSVG}) || o.Logger == nil {
		t.Errorf("render defaults not applied: %+v", o)
	}

	d := DefaultOptions()
	if err := d.ValidateAndSetDefaults(); err != nil {
		t.Errorf("DefaultOptions invalid: %v", err)
	}
	if d.MaxDisplay != treemap.DefaultMaxDisplay || d.Inset != treemap.DefaultInset {
		t.Errorf("DefaultOptions = %s", d)
	}
}

func TestOptionsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		code   errors.Code
	}{
		{"negative width", func(o *Options) { o.Width = -1 }, errors.ErrCodeInvalidDimensions},
		{"huge height", func(o *Options) { o.Height = 1e9 }, errors.ErrCodeInvalidDimensions},
		{"negative max", func(o *Options) { o.MaxDisplay = -3 }, errors.ErrCodeInvalidInput},
		{"negative inset", func(o *Options) { o.Inset = -1 }, errors.ErrCodeInvalidInput},
		{"bad mode", func(o *Options) { o.Mode = "sepia" }, errors.ErrCodeInvalidMode},
		{"bad format", func(o *Options) { o.Formats = []string{"gif"} }, errors.ErrCodeInvalidFormat},
		{"bad style", func(o *Options) { o.Style = "comic" }, errors.ErrCodeInvalidStyle},
		{"bad scale", func(o *Options) { o.Scale = 50 }, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.mutate(&o)
			if err := o.ValidateAndSetDefaults(); !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	o := DefaultOptions()
	if k := o.ArtifactKeyOpts(FormatSVG); k.Scale != 0 {
		t.Errorf("svg key carries scale %v", k.Scale)
	}
	if k := o.ArtifactKeyOpts(FormatPNG); k.Scale != DefaultScale {
		t.Errorf("png key scale = %v", k.Scale)
	}
}

func TestContentType(t *testing.T) {
	for format, want := range map[string]string{
		FormatSVG:  "image/svg+xml",
		FormatPNG:  "image/png",
		FormatPDF:  "application/pdf",
		FormatJSON: "application/json",
		"gif":      "application/octet-stream",
	} {
		if got := ContentType(format); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", format, got, want)
		}
	}
}

func testItems() []treemap.Item {
	return []treemap.Item{
		{ID: "go", Text: "golang tutorial", Secondary: "50", Weight: 50},
		{ID: "rs", Text: "rust tutorial", Secondary: "30", Weight: 30},
		{ID: "zig", Text: "zig tutorial", Secondary: "20", Weight: 20},
	}
}

func TestRunnerExecuteCaches(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, nil)
	defer r.Close()

	opts := DefaultOptions()
	opts.Width, opts.Height = 300, 200
	opts.Formats = []string{FormatSVG, FormatJSON, FormatText, FormatPNG}

	first, err := r.Execute(ctx, testItems(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Errorf("first run should miss: %+v", first.CacheInfo)
	}
	if first.Stats.TileCount != 3 || first.Stats.ItemCount != 3 || first.ItemsHash == "" {
		t.Errorf("stats = %+v", first.Stats)
	}
	for _, f := range opts.Formats {
		if len(first.Artifacts[f]) == 0 {
			t.Errorf("missing %s artifact", f)
		}
	}
	if !bytes.Contains(first.Artifacts[FormatText], []byte("golang")) {
		t.Errorf("text artifact missing label:\n%s", first.Artifacts[FormatText])
	}

	second, err := r.Execute(ctx, testItems(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit: %+v", second.CacheInfo)
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached SVG differs from rendered SVG")
	}
	for i := range first.Layout.Tiles {
		if first.Layout.Tiles[i].Bounds != second.Layout.Tiles[i].Bounds {
			t.Errorf("cached tile %d bounds differ", i)
		}
	}

	opts.Refresh = true
	third, err := r.Execute(ctx, testItems(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheInfo.LayoutHit || third.CacheInfo.RenderHit {
		t.Errorf("refresh should bypass cache: %+v", third.CacheInfo)
	}
}

func TestRunnerCacheKeyedByOptions(t *testing.T) {
	ctx := context.Background()
	fc, _ := cache.NewFileCache(t.TempDir())
	r := NewRunner(fc, nil, nil)

	opts := DefaultOptions()
	if _, _, err := r.GenerateLayoutWithCacheInfo(ctx, testItems(), opts); err != nil {
		t.Fatal(err)
	}
	opts.Mode = "light"
	l, hit, err := r.GenerateLayoutWithCacheInfo(ctx, testItems(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("changing mode should miss the layout cache")
	}
	if l.Mode != treemap.ModeLight {
		t.Errorf("mode = %s", l.Mode)
	}
}

type countingHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks

	mu                 sync.Mutex
	layouts, renders   int
	hits, misses, sets int
	lastTiles          int
}

func (h *countingHooks) OnLayoutComplete(_ context.Context, tiles int, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.layouts++
	h.lastTiles = tiles
}

func (h *countingHooks) OnRenderComplete(_ context.Context, _ []string, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.renders++
}

func (h *countingHooks) OnCacheHit(context.Context, string)  { h.mu.Lock(); h.hits++; h.mu.Unlock() }
func (h *countingHooks) OnCacheMiss(context.Context, string) { h.mu.Lock(); h.misses++; h.mu.Unlock() }
func (h *countingHooks) OnCacheSet(context.Context, string, int) {
	h.mu.Lock()
	h.sets++
	h.mu.Unlock()
}

func TestRunnerHooks(t *testing.T) {
	h := &countingHooks{}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	defer observability.Reset()

	fc, _ := cache.NewFileCache(t.TempDir())
	r := NewRunner(fc, nil, nil)
	opts := DefaultOptions()
	opts.Formats = []string{FormatSVG, FormatJSON}

	if _, err := r.Execute(context.Background(), testItems(), opts); err != nil {
		t.Fatal(err)
	}
	if h.layouts != 1 || h.renders != 1 || h.lastTiles != 3 {
		t.Errorf("pipeline hooks: layouts=%d renders=%d tiles=%d", h.layouts, h.renders, h.lastTiles)
	}
	if h.misses != 2 || h.sets != 3 {
		t.Errorf("cache hooks: misses=%d sets=%d, want 2 and 3", h.misses, h.sets)
	}

	if _, err := r.Execute(context.Background(), testItems(), opts); err != nil {
		t.Fatal(err)
	}
	if h.hits != 3 || h.layouts != 1 {
		t.Errorf("second run: hits=%d layouts=%d, want 3 and 1", h.hits, h.layouts)
	}
}

func TestRunnerNullCache(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), nil, DefaultOptions())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(res.Layout.Tiles) != 0 || len(res.Artifacts[FormatSVG]) == 0 {
		t.Errorf("empty input should still render an SVG canvas")
	}
}

func TestRunnerRejectsInvalidOptions(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	opts := DefaultOptions()
	opts.Mode = "sepia"
	if _, err := r.Execute(context.Background(), testItems(), opts); !errors.Is(err, errors.ErrCodeInvalidMode) {
		t.Errorf("error = %v, want INVALID_MODE", err)
	}
}

func TestLoadItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kw.json")
	if err := os.WriteFile(path, []byte(`[{"text": "running shoes", "weight": 1200, "url": "https://x"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	items, err := LoadItems(path)
	if err != nil {
		t.Fatalf("LoadItems: %v", err)
	}
	want := treemap.Item{ID: "running shoes", Text: "running shoes", Secondary: "1,200", Weight: 1200, URL: "https://x"}
	if len(items) != 1 || items[0] != want {
		t.Errorf("items = %+v", items)
	}

	items, err = DecodeItems(strings.NewReader("items:\n  - text: a\n    weight: 1\n"), "yaml")
	if err != nil || len(items) != 1 {
		t.Errorf("DecodeItems = %+v, %v", items, err)
	}
}
