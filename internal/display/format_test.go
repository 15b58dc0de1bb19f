package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/backmassage/esrbatch/internal/config"
	"github.com/backmassage/esrbatch/internal/term"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"typical 4x png 18 MiB", 18874368, "18.0 MiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatRatio(t *testing.T) {
	tests := []struct {
		name    string
		in, out int64
		want    string
	}{
		{"no input", 0, 100, "n/a"},
		{"same size", 100, 100, "x1.0"},
		{"4x upscale growth", 1000, 12345, "x12.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRatio(tt.in, tt.out); got != tt.want {
				t.Errorf("FormatRatio(%d, %d) = %q, want %q", tt.in, tt.out, got, tt.want)
			}
		})
	}
}

func TestPrintBanner_NoColor(t *testing.T) {
	var buf bytes.Buffer
	term.Configure(config.ColorNever, &buf)
	PrintBanner(&buf)
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("banner contains escape codes with colors off: %q", buf.String())
	}
	if buf.Len() == 0 {
		t.Error("banner is empty")
	}
}
