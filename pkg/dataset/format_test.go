package dataset

import "testing"

func TestFormatWeight(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{12345, "12,345"},
		{1234567, "1,234,567"},
		{12.5, "12.5"},
	}

	for _, tt := range tests {
		if got := FormatWeight(tt.in); got != tt.want {
			t.Errorf("FormatWeight(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompactWeight(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{12.5, "12.5"},
		{1000, "1K"},
		{12300, "12.3K"},
		{4500000, "4.5M"},
		{1200000000, "1.2B"},
	}

	for _, tt := range tests {
		if got := CompactWeight(tt.in); got != tt.want {
			t.Errorf("CompactWeight(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
