package treemap

import "testing"

func TestColorFor(t *testing.T) {
	tests := []struct {
		index, max int
		mode       Mode
		want       Color
	}{
		{0, 50, ModeDark, Color{H: 0, S: 0.7, L: 0.6}},
		{25, 50, ModeDark, Color{H: 180, S: 0.7, L: 0.6}},
		{50, 50, ModeDark, Color{H: 0, S: 0.7, L: 0.6}},
		{1, 3, ModeLight, Color{H: 120, S: 0.7, L: 0.45}},
		{4, 0, ModeLight, Color{H: 0, S: 0.7, L: 0.45}},
	}

	for _, tt := range tests {
		if got := ColorFor(tt.index, tt.max, tt.mode); got != tt.want {
			t.Errorf("ColorFor(%d, %d, %s) = %+v, want %+v", tt.index, tt.max, tt.mode, got, tt.want)
		}
	}
}

func TestColorStableAcrossWeights(t *testing.T) {
	a := Build(items(1, 2, 3, 4, 5), 300, 200)
	b := Build(items(500, 1, 80, 2, 9), 300, 200)
	for i := range a.Tiles {
		if a.Tiles[i].Color != b.Tiles[i].Color {
			t.Errorf("tile %d colour changed with weights: %+v vs %+v", i, a.Tiles[i].Color, b.Tiles[i].Color)
		}
	}
}

func TestColorModeLightness(t *testing.T) {
	dark := Build(items(1, 1), 100, 100, WithMode(ModeDark))
	light := Build(items(1, 1), 100, 100, WithMode(ModeLight))
	if dark.Tiles[0].Color.L <= light.Tiles[0].Color.L {
		t.Errorf("dark mode lightness %v should exceed light mode %v", dark.Tiles[0].Color.L, light.Tiles[0].Color.L)
	}
}

func TestColorCSS(t *testing.T) {
	if got := ColorFor(25, 50, ModeDark).CSS(); got != "hsl(180.0, 70%, 60%)" {
		t.Errorf("CSS() = %q", got)
	}
}

func TestColorText(t *testing.T) {
	yellow := Color{H: 60, S: 0.7, L: 0.6}
	if got := yellow.Text(); got != "#111111" {
		t.Errorf("yellow Text() = %q, want dark text", got)
	}
	blue := Color{H: 240, S: 0.7, L: 0.45}
	if got := blue.Text(); got != "#ffffff" {
		t.Errorf("blue Text() = %q, want light text", got)
	}
}

func TestModeValid(t *testing.T) {
	for _, m := range []Mode{ModeDark, ModeLight} {
		if !m.Valid() {
			t.Errorf("%q should be valid", m)
		}
	}
	if Mode("sepia").Valid() {
		t.Error("sepia should be invalid")
	}
}
