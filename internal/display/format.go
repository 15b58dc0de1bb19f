// Package display formats human-facing output: the banner and size labels.
package display

import (
	"fmt"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// FormatRatio returns out/in as a magnification label (e.g. "x12.3"), or
// "n/a" when in is not positive.
func FormatRatio(in, out int64) string {
	if in <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("x%.1f", float64(out)/float64(in))
}
