// Command esrbatch upscales every image in ./inputs into ./results with the
// Real-ESRGAN inference script, one image at a time.
//
// It parses flags, validates configuration and paths, and either runs system
// diagnostics (--check) or the batch.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/backmassage/esrbatch/internal/check"
	"github.com/backmassage/esrbatch/internal/config"
	"github.com/backmassage/esrbatch/internal/display"
	"github.com/backmassage/esrbatch/internal/logging"
	"github.com/backmassage/esrbatch/internal/pipeline"
	"github.com/backmassage/esrbatch/internal/realesrgan"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI with args (without the program name) and returns the
// process exit code.
func run(args []string) int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version, args, os.Stdout); err != nil {
		if errors.Is(err, config.ErrHelp) || errors.Is(err, config.ErrVersion) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "esrbatch: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "esrbatch: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "esrbatch: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available.
	display.PrintBanner(os.Stdout)

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	// Input must exist; output is created if needed and must not be
	// inside input.
	inputAbs, err := absPath(cfg.InputDir)
	if err != nil {
		log.Error("Input directory not found: %s", cfg.InputDir)
		return 1
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Error("Cannot create output directory: %s", cfg.OutputDir)
		return 1
	}
	outputAbs, err := absPath(cfg.OutputDir)
	if err != nil {
		log.Error("Cannot resolve output path: %s", cfg.OutputDir)
		return 1
	}
	if err := cfg.ValidatePaths(inputAbs, outputAbs); err != nil {
		log.Error("%v", err)
		return 1
	}

	log.Info("=== esrbatch v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputDir)
	log.Info("Out: %s", cfg.OutputDir)
	if cfg.DryRun {
		log.Warn("DRY RUN: the inference script will not be run")
	}
	log.Blank()

	// Both are re-checked for every image (a missing interpreter fails each
	// job); these are only early notices.
	if err := check.CheckDeps(&cfg); err != nil {
		log.Warn("%s: %v", cfg.Interpreter, err)
	}
	if err := realesrgan.CheckScript(&cfg); err != nil {
		log.Warn("%v", err)
	}

	// Phase 3: Signal handling. Cancel on SIGINT/SIGTERM; the running script
	// is killed and no further images are started.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, stopping…")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Phase 4: Run the batch.
	stats := pipeline.Run(ctx, &cfg, log)

	if cfg.FailOnError && stats.Failed > 0 {
		return 1
	}
	return 0
}

// absPath returns the absolute, symlink-resolved path for safe comparison
// of input vs output directory hierarchies.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
