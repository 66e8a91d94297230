package treemap

import (
	"reflect"
	"testing"
)

func TestFitLabelThreshold(t *testing.T) {
	if l := FitLabel(64, 64, "shoes"); l.Show {
		t.Errorf("64x64 should hide the label, got %+v", l)
	}
	l := FitLabel(65, 65, "shoes")
	if !l.Show {
		t.Fatal("65x65 should show the label")
	}
	if l.FontSize != 8.125 {
		t.Errorf("FontSize = %v, want 8.125", l.FontSize)
	}
	if !reflect.DeepEqual(l.Lines, []string{"shoes"}) {
		t.Errorf("Lines = %q", l.Lines)
	}
}

func TestFitLabelWrap(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
		text string
		want []string
	}{
		{
			name: "fits two lines",
			w:    200, h: 100,
			text: "golang tutorial for beginners",
			want: []string{"golang tutorial for", "beginners"},
		},
		{
			name: "long word alone",
			w:    100, h: 100,
			text: "a supercalifragilistic b",
			want: []string{"a", "supercalifragilistic", "b"},
		},
		{
			name: "overflow gets ellipsis",
			w:    100, h: 100,
			text: "one two three four five six seven eight nine ten eleven twelve thirteen",
			want: []string{"one two three", "four five six", "seven eight", "nine ten", "eleven twe..."},
		},
		{
			name: "empty",
			w:    100, h: 100,
			text: "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := FitLabel(tt.w, tt.h, tt.text)
			if !l.Show {
				t.Fatalf("label hidden: %+v", l)
			}
			if !reflect.DeepEqual(l.Lines, tt.want) {
				t.Errorf("Lines = %q, want %q", l.Lines, tt.want)
			}
		})
	}
}

func TestWrapWordsWideRunes(t *testing.T) {
	// Each CJK rune occupies two cells.
	got := wrapWords("日本語 東京", 7)
	want := []string{"日本語", "東京"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wrapWords = %q, want %q", got, want)
	}
}

func TestWithEllipsis(t *testing.T) {
	tests := []struct{ in, want string }{
		{"abc", "abc"},
		{"abcd", "a..."},
		{"héllo", "hé..."},
	}
	for _, tt := range tests {
		if got := withEllipsis(tt.in); got != tt.want {
			t.Errorf("withEllipsis(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTileLabel(t *testing.T) {
	l := Build([]Item{{ID: "a", Text: "running shoes", Weight: 1}}, 302, 202)
	lbl := l.Tiles[0].Label()
	if !lbl.Show || len(lbl.Lines) != 1 || lbl.Lines[0] != "running shoes" {
		t.Errorf("Label() = %+v", lbl)
	}
	if lbl.LineHeight() != lbl.FontSize*1.2 {
		t.Errorf("LineHeight() = %v", lbl.LineHeight())
	}
}
