package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"case and spaces", " PNG , txt", []string{"png", "txt"}},
		{"duplicates", "svg,svg", []string{"svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input string
		want          string
	}{
		{"", "keywords.json", "keywords"},
		{"", "data/keywords.layout.json", "data/keywords"},
		{"out/map.svg", "keywords.json", "out/map"},
		{"out/map", "keywords.json", "out/map"},
	}

	for _, tt := range tests {
		t.Run(tt.output+"|"+tt.input, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name                  string
		output, input, format string
		count                 int
		want                  string
	}{
		{"derived single", "", "k.json", "svg", 1, "k.svg"},
		{"explicit single", "map.image", "k.json", "png", 1, "map.image"},
		{"explicit multiple", "map.svg", "k.json", "png", 2, "map.png"},
		{"derived multiple", "", "k.layout.json", "txt", 3, "k.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.output, tt.input, tt.format, tt.count); got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	c := New(&bytes.Buffer{}, LogInfo)

	artifacts := map[string][]byte{
		"svg": []byte("<svg/>"),
		"txt": []byte("text"),
	}
	err := c.writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   []string{"svg", "txt"},
		input:     filepath.Join(dir, "items.json"),
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	for format, want := range artifacts {
		got, err := os.ReadFile(filepath.Join(dir, "items."+format))
		if err != nil {
			t.Fatalf("read %s: %v", format, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("%s = %q, want %q", format, got, want)
		}
	}
}

func TestWriteArtifactsStdout(t *testing.T) {
	var out bytes.Buffer
	c := New(&bytes.Buffer{}, LogInfo)
	c.SetOutput(&out)

	err := c.writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": []byte("<svg/>")},
		formats:   []string{"svg"},
		output:    "-",
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}
	if out.String() != "<svg/>" {
		t.Errorf("stdout = %q", out.String())
	}

	err = c.writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": nil, "png": nil},
		formats:   []string{"svg", "png"},
		output:    "-",
	})
	if err == nil {
		t.Error("writeArtifacts() to stdout with two formats should fail")
	}
}
