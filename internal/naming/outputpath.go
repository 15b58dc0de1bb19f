package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// OutputName returns the scale-annotated base name for inputPath.
// The extension is kept as-is, including its case.
func OutputName(inputPath string, scale int) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s_%dx%s", stem, scale, ext)
}

// OutputPath joins outputDir with [OutputName].
func OutputPath(outputDir, inputPath string, scale int) string {
	return filepath.Join(outputDir, OutputName(inputPath, scale))
}
