// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Defaults match the legacy batch_upscale.py script for parity.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// --- Enum types for validated fields ---

// Model is the Real-ESRGAN model identifier forwarded to the inference script.
type Model string

const (
	ModelX4Plus      Model = "RealESRGAN_x4plus"          // General-purpose photos.
	ModelX4PlusAnime Model = "RealESRGAN_x4plus_anime_6B" // Illustrations (default).
)

// Models lists every accepted model in help-text order.
var Models = []Model{ModelX4Plus, ModelX4PlusAnime}

// Scale is the upscale factor forwarded to the inference script and embedded
// in output filenames.
type Scale int

// Scales lists every accepted scale factor.
var Scales = []Scale{2, 4, 8}

// Valid reports whether s is one of [Scales].
func (s Scale) Valid() bool {
	for _, v := range Scales {
		if s == v {
			return true
		}
	}
	return false
}

// Valid reports whether m is one of [Models].
func (m Model) Valid() bool {
	for _, v := range Models {
		if m == v {
			return true
		}
	}
	return false
}

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// mutated by [ParseFlags], and then passed (by pointer) to packages that need
// it. Nothing mutates it after startup.
type Config struct {
	// Upscale settings (CLI).
	Model Model // Default: RealESRGAN_x4plus_anime_6B.
	Scale Scale // Default: 4.

	// Fixed conventions. Not exposed as flags; tests redirect them.
	InputDir    string // Fixed: "inputs".
	OutputDir   string // Fixed: "results". Created if missing.
	ScriptPath  string // Fixed: "inference_realesrgan.py", relative to the working directory.
	Interpreter string // Fixed: "python3".
	WeightsDir  string // Fixed: "weights". Only inspected by --check.

	// Behavior flags.
	DryRun         bool
	ShowToolOutput bool // Default: true. Cleared by --no-tool-output.
	FailOnError    bool // Exit non-zero when any job failed.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults matching the legacy script.
// Used as the base before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Model:          ModelX4PlusAnime,
		Scale:          4,
		InputDir:       "inputs",
		OutputDir:      "results",
		ScriptPath:     "inference_realesrgan.py",
		Interpreter:    "python3",
		WeightsDir:     "weights",
		ShowToolOutput: true,
		ColorMode:      ColorAuto,
	}
}

// Validate checks that enum fields hold valid values and that the fixed
// conventions are populated.
func (c *Config) Validate() error {
	if !c.Model.Valid() {
		return fmt.Errorf("invalid model %q (use %s)", c.Model, joinModels(" or "))
	}
	if !c.Scale.Valid() {
		return fmt.Errorf("invalid scale %d (use 2, 4 or 8)", c.Scale)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Interpreter == "" || c.ScriptPath == "" {
		return errors.New("interpreter and inference script must be set")
	}
	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" || c.OutputDir == "" {
		return errors.New("need both an input and an output directory")
	}
	return nil
}

// ValidatePaths rejects an output directory that equals the input directory
// or lies below it. Both arguments must be absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == inputAbs || strings.HasPrefix(outputAbs+sep, inputAbs+sep) {
		return errors.New("output directory must not be inside input directory")
	}
	return nil
}

func joinModels(last string) string {
	names := make([]string, len(Models))
	for i, m := range Models {
		names[i] = "'" + string(m) + "'"
	}
	if len(names) < 2 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + last + names[len(names)-1]
}
