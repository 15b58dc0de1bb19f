// Package term provides ANSI color state and terminal detection.
//
// Colors are package-level variables shared by logging and display.
// [Configure] sets them for the stream console output goes to; when colors
// are disabled the variables are empty strings and concatenation is a no-op.
package term

import (
	"io"
	"os"
	"strings"

	"github.com/backmassage/esrbatch/internal/config"
)

// ANSI color codes. Empty when colors are disabled.
var (
	Red     = ""
	Green   = ""
	Yellow  = ""
	Blue    = ""
	Cyan    = ""
	Magenta = ""
	NC      = "" // Reset sequence.
)

// Configure resolves mode against w, the writer console output goes to, and
// sets the package-level colors. The logger calls it on creation and again
// whenever its output is redirected.
func Configure(mode config.ColorMode, w io.Writer) {
	if !resolve(mode, w) {
		Red, Green, Yellow, Blue, Cyan, Magenta, NC = "", "", "", "", "", "", ""
		return
	}
	Red = "\033[1;91m"
	Green = "\033[1;92m"
	Yellow = "\033[1;93m"
	Blue = "\033[1;94m"
	Cyan = "\033[1;96m"
	Magenta = "\033[1;95m"
	NC = "\033[0m"
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return NC != "" }

// resolve honors the explicit modes; in auto mode colors need w to be a TTY,
// NO_COLOR (https://no-color.org) unset, and a TERM other than "dumb".
func resolve(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return IsTerminal(w)
}

// IsTerminal reports whether w is a file attached to a TTY (character
// device). Buffers, pipes and regular files are not.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
