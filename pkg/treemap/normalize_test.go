package treemap

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	in := items(5, 4, 3, 2, 1)

	tests := []struct {
		name string
		max  int
		want int
	}{
		{"under cap", 10, 5},
		{"at cap", 5, 5},
		{"over cap", 3, 3},
		{"no cap", 0, 5},
		{"negative disables cap", -1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(in, tt.max)
			if len(got) != tt.want {
				t.Fatalf("len = %d, want %d", len(got), tt.want)
			}
			for i := range got {
				if &got[i] != &in[i] {
					t.Errorf("item %d is not the caller's item", i)
				}
			}
		})
	}
}

func TestNormalizeCapDoesNotGrow(t *testing.T) {
	in := items(1, 2, 3, 4)
	got := Normalize(in, 2)
	got = append(got, Item{ID: "x"})
	if in[2].ID == "x" {
		t.Error("append to the normalized slice overwrote caller data")
	}
}

func TestShares(t *testing.T) {
	tests := []struct {
		name      string
		weights   []float64
		want      []float64
		wantTotal float64
	}{
		{"positive", []float64{2, 3}, []float64{2, 3}, 5},
		{"clamped", []float64{2, -3, math.NaN(), math.Inf(1)}, []float64{2, 0, 0, 0}, 2},
		{"all zero", []float64{0, 0, 0}, []float64{1, 1, 1}, 3},
		{"all negative", []float64{-1, -2}, []float64{1, 1}, 2},
		{"overflowing sum", []float64{1e308, 1e308, 1e308}, []float64{1, 1, 1}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total := shares(items(tt.weights...))
			if total != tt.wantTotal {
				t.Errorf("total = %v, want %v", total, tt.wantTotal)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("share[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
