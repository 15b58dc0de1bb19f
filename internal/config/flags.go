package config

// This file implements CLI flag parsing via go-flags.
// Negated flags (e.g. --no-tool-output) are applied after parsing so Config
// defaults hold unless the user passes the flag.

import (
	"errors"
	"fmt"
	"io"

	flags "github.com/jessevdk/go-flags"
)

// ErrHelp and ErrVersion are returned by [ParseFlags] after it printed the
// help text or version string. Callers should exit 0.
var (
	ErrHelp    = errors.New("help requested")
	ErrVersion = errors.New("version requested")
)

// options mirrors the CLI surface. Choice tags keep --scale and --model to the
// fixed sets accepted by the inference script.
type options struct {
	Upscale struct {
		Scale Scale `long:"scale" default:"4" choice:"2" choice:"4" choice:"8" value-name:"N" description:"Upscale factor"`
		Model Model `long:"model" default:"RealESRGAN_x4plus_anime_6B" choice:"RealESRGAN_x4plus" choice:"RealESRGAN_x4plus_anime_6B" value-name:"NAME" description:"Model: RealESRGAN_x4plus (general) or RealESRGAN_x4plus_anime_6B (illustration)"`
	} `group:"Upscale"`

	Behavior struct {
		DryRun       bool `short:"d" long:"dry-run" description:"Print the commands without running them"`
		NoToolOutput bool `long:"no-tool-output" description:"Do not stream inference script output"`
		FailOnError  bool `long:"fail-on-error" description:"Exit 1 when any image failed"`
	} `group:"Behavior"`

	Display struct {
		Color   bool   `long:"color" description:"Force colored logs"`
		NoColor bool   `long:"no-color" description:"Disable colored logs"`
		Verbose bool   `short:"v" long:"verbose" description:"Verbose output"`
		LogFile string `short:"l" long:"log" value-name:"PATH" description:"Append logs to file"`
	} `group:"Display"`

	Utility struct {
		Check   bool `short:"c" long:"check" description:"System diagnostics (python, script, weights) and exit"`
		Version bool `short:"V" long:"version" description:"Print version and exit"`
	} `group:"Utility"`
}

// ParseFlags parses args (without the program name) into cfg. Help and
// version text go to out. On --help or --version it returns [ErrHelp] or
// [ErrVersion]; on a parse error it returns the go-flags error.
func ParseFlags(cfg *Config, version string, args []string, out io.Writer) error {
	var opts options
	opts.Upscale.Scale = cfg.Scale
	opts.Upscale.Model = cfg.Model

	p := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	p.Name = "esrbatch"
	p.Usage = "[OPTIONS]\n\nUpscales every image in ./" + cfg.InputDir + " into ./" + cfg.OutputDir +
		" with Real-ESRGAN (v" + version + ")."

	rest, err := p.ParseArgs(args)
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			p.WriteHelp(out)
			return ErrHelp
		}
		return err
	}
	if opts.Utility.Version {
		fmt.Fprintln(out, "esrbatch v"+version)
		return ErrVersion
	}
	if len(rest) > 0 {
		return fmt.Errorf("unexpected argument %q (input and output directories are fixed)", rest[0])
	}

	applyOptions(cfg, &opts)
	return nil
}

// applyOptions copies parsed values and negated flags into cfg.
func applyOptions(cfg *Config, o *options) {
	cfg.Scale = o.Upscale.Scale
	cfg.Model = o.Upscale.Model

	cfg.DryRun = o.Behavior.DryRun
	cfg.FailOnError = o.Behavior.FailOnError
	if o.Behavior.NoToolOutput {
		cfg.ShowToolOutput = false
	}

	cfg.Verbose = o.Display.Verbose
	cfg.LogFile = o.Display.LogFile
	if o.Display.NoColor {
		cfg.ColorMode = ColorNever
	} else if o.Display.Color {
		cfg.ColorMode = ColorAlways
	}

	cfg.CheckOnly = o.Utility.Check
}
