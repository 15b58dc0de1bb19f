package display

import (
	"fmt"
	"io"

	"github.com/backmassage/esrbatch/internal/term"
)

// PrintBanner writes the startup banner to w, in magenta when colors are on.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, `  ___  ___ _ __| |__   __ _| |_ ___| |__
 / _ \/ __| '__| '_ \ / _`+"`"+` | __/ __| '_ \
|  __/\__ \ |  | |_) | (_| | || (__| | | |
 \___||___/_|  |_.__/ \__,_|\__\___|_| |_|
`)
	if term.Enabled() {
		fmt.Fprintln(w, term.NC)
	}
}
