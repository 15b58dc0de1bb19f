// Package check provides system diagnostics (--check mode) and the startup
// dependency validation (CheckDeps) for the Python interpreter and the
// Real-ESRGAN inference script.
package check

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/backmassage/esrbatch/internal/config"
	"github.com/backmassage/esrbatch/internal/pipeline"
	"github.com/backmassage/esrbatch/internal/realesrgan"
)

// ErrInterpreterNotFound is returned by CheckDeps when the Python interpreter
// is not on PATH.
var ErrInterpreterNotFound = errors.New("python interpreter not found on PATH")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here so check stays testable with a recording logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the --check flow: interpreter and version, inference script,
// input directory contents, and model weights. It returns false when a
// required item (interpreter or script) is missing. Missing weights only warn
// because the script downloads them on first use.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkInterpreter(cfg, log)
	if !checkScript(cfg, log) {
		ok = false
	}
	checkInputs(cfg, log)
	checkWeights(cfg, log)
	return ok
}

// CheckDeps is the startup validation: the interpreter must be on PATH.
// The script itself is checked per job by the runner.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath(cfg.Interpreter); err != nil {
		return ErrInterpreterNotFound
	}
	return nil
}

func checkInterpreter(cfg *config.Config, log Logger) bool {
	path, err := exec.LookPath(cfg.Interpreter)
	if err != nil {
		log.Error("%s not found", cfg.Interpreter)
		return false
	}
	out, err := exec.Command(path, "--version").CombinedOutput()
	if err != nil {
		log.Warn("%s found but --version failed: %v", cfg.Interpreter, err)
		return true
	}
	log.Success("%s: %s", cfg.Interpreter, firstLine(string(out)))
	return true
}

func checkScript(cfg *config.Config, log Logger) bool {
	if err := realesrgan.CheckScript(cfg); err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("Inference script: %s", cfg.ScriptPath)
	return true
}

func checkInputs(cfg *config.Config, log Logger) {
	files, err := pipeline.Discover(cfg.InputDir)
	if err != nil {
		log.Warn("Input directory %s: %v", cfg.InputDir, err)
		return
	}
	if len(files) == 0 {
		log.Warn("Input directory %s has no images", cfg.InputDir)
		return
	}
	log.Success("Input directory %s: %d image(s)", cfg.InputDir, len(files))
}

// checkWeights looks for <WeightsDir>/<model>.pth for every known model and
// marks the one selected for this run.
func checkWeights(cfg *config.Config, log Logger) {
	for _, m := range config.Models {
		path := filepath.Join(cfg.WeightsDir, string(m)+".pth")
		marker := ""
		if m == cfg.Model {
			marker = " (selected)"
		}
		if _, err := os.Stat(path); err == nil {
			log.Success("Weights: %s%s", path, marker)
		} else if m == cfg.Model {
			log.Warn("Weights: %s missing%s; the script will try to download it", path, marker)
		} else {
			log.Info("Weights: %s not present", path)
		}
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		return s[:idx]
	}
	return s
}
