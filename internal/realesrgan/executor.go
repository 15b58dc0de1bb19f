package realesrgan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/backmassage/esrbatch/internal/config"
	"github.com/backmassage/esrbatch/internal/job"
)

// ExecResult holds the outcome of a single inference run.
type ExecResult struct {
	Stderr string
	Err    error
}

// StderrTail returns up to n trailing non-empty stderr lines.
func (r ExecResult) StderrTail(n int) []string {
	s := strings.TrimSpace(r.Stderr)
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}

// CheckScript verifies the inference script exists. A missing script yields
// an error wrapping [ErrScriptNotFound].
func CheckScript(cfg *config.Config) error {
	_, err := os.Stat(cfg.ScriptPath)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s (run from the Real-ESRGAN project directory)", ErrScriptNotFound, cfg.ScriptPath)
	}
	if err != nil {
		return fmt.Errorf("check %s: %w", cfg.ScriptPath, err)
	}
	return nil
}

// Execute checks the script precondition, then runs the inference command
// for j and waits for it to exit. With ShowToolOutput the child's stdout and
// stderr stream to the console; stderr is always captured for diagnosis.
// Cancelling ctx kills the child.
func Execute(ctx context.Context, cfg *config.Config, j *job.Job) ExecResult {
	if err := CheckScript(cfg); err != nil {
		return ExecResult{Err: err}
	}

	args := Build(cfg, j)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if cfg.ShowToolOutput {
		cmd.Stdout = os.Stdout
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	if err != nil {
		err = fmt.Errorf("%s: %w", filepath.Base(cfg.ScriptPath), err)
	}
	return ExecResult{
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}
