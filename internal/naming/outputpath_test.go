package naming

import (
	"path/filepath"
	"testing"
)

func TestOutputName(t *testing.T) {
	tests := []struct {
		input string
		scale int
		want  string
	}{
		{"cat.png", 4, "cat_4x.png"},
		{"cat.png", 8, "cat_8x.png"},
		{"cat.png", 2, "cat_2x.png"},
		{"inputs/photo.JPG", 4, "photo_4x.JPG"},
		{"art.v2.webp", 4, "art.v2_4x.webp"},
		{"scan.tiff", 2, "scan_2x.tiff"},
		{"my drawing.jpeg", 4, "my drawing_4x.jpeg"},
		{"/abs/path/icon.bmp", 8, "icon_8x.bmp"},
		{".hidden.png", 4, ".hidden_4x.png"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := OutputName(tt.input, tt.scale); got != tt.want {
				t.Errorf("OutputName(%q, %d) = %q, want %q", tt.input, tt.scale, got, tt.want)
			}
		})
	}
}

func TestOutputName_ScaleOnlyChangesSuffix(t *testing.T) {
	a := OutputName("sky.png", 4)
	b := OutputName("sky.png", 8)
	if a == b {
		t.Fatalf("different scales produced the same name %q", a)
	}
	if a[:len("sky_")] != b[:len("sky_")] || filepath.Ext(a) != filepath.Ext(b) {
		t.Errorf("stem or extension differs between %q and %q", a, b)
	}
}

func TestOutputPath(t *testing.T) {
	got := OutputPath("results", "inputs/cat.png", 4)
	want := filepath.Join("results", "cat_4x.png")
	if got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
}
