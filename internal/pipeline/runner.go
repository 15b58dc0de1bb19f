package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/backmassage/esrbatch/internal/config"
	"github.com/backmassage/esrbatch/internal/display"
	"github.com/backmassage/esrbatch/internal/job"
	"github.com/backmassage/esrbatch/internal/logging"
	"github.com/backmassage/esrbatch/internal/realesrgan"
)

// stderrTailLines is how much captured script stderr is logged on failure.
const stderrTailLines = 20

// Run is the top-level batch entry point. It discovers images, runs one job
// per image in order, and returns aggregate stats. Job failures are logged
// and counted; they never stop the batch. Cancelling ctx stops the batch
// before the next job.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	files, err := Discover(cfg.InputDir)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return stats
	}
	if len(files) == 0 {
		log.Warn("No images found in %s; put the images to upscale there", cfg.InputDir)
		return stats
	}

	stats.Total = len(files)
	logBatchHeader(cfg, log, &stats)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		stats.record(processFile(ctx, cfg, log, path, &stats))
		log.Blank()
	}

	logSummary(cfg, log, &stats)
	return stats
}

// processFile handles one image: build job → check script → run → report.
func processFile(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	path string,
	stats *RunStats,
) JobResult {
	basename := filepath.Base(path)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, basename)

	fail := func(r JobResult) JobResult {
		r.Kind = realesrgan.Classify(r.Err)
		if r.Job != nil {
			log.Error("Failed: %s: %v [job %s]", basename, r.Err, r.Job.ShortID())
		} else {
			log.Error("Failed: %s: %v", basename, r.Err)
		}
		return r
	}

	j, err := job.New(cfg, path)
	if err != nil {
		return fail(JobResult{InputPath: path, Err: err})
	}
	res := JobResult{Job: j, InputPath: path}
	log.Debug(cfg.Verbose, "Job %s: %s -> %s", j.ID, j.InputPath, j.OutputPath)

	// --- Dry-run ---
	if cfg.DryRun {
		if err := realesrgan.CheckScript(cfg); err != nil {
			res.Err = err
			return fail(res)
		}
		log.Success("[DRY] Would run: %s", strings.Join(realesrgan.Build(cfg, j), " "))
		return res
	}

	// --- Execute ---
	log.Info("Upscaling %s (%dx, model %s) [job %s]", basename, j.Scale, j.Model, j.ShortID())
	start := time.Now()
	er := realesrgan.Execute(ctx, cfg, j)
	res.Elapsed = time.Since(start)

	if er.Err != nil {
		res.Err = er.Err
		res = fail(res)
		if hint := realesrgan.Diagnose(er.Stderr); hint != "" {
			log.Warn("  Hint: %s", hint)
		}
		// Streamed output is already on the console.
		if !cfg.ShowToolOutput {
			logStderr(log, er.StderrTail(stderrTailLines))
		}
		return res
	}

	// --- Update byte totals ---
	if inInfo, err := os.Stat(j.InputPath); err == nil {
		stats.TotalInputBytes += inInfo.Size()
	}
	outInfo, err := os.Stat(j.OutputPath)
	if err == nil && outInfo.Mode().IsRegular() {
		res.OutBytes = outInfo.Size()
		stats.TotalOutputBytes += res.OutBytes
		log.Success("Done: %s in %s (%s)", filepath.Base(j.OutputPath),
			res.Elapsed.Round(100*time.Millisecond), display.FormatBytes(res.OutBytes))
	} else {
		log.Success("Done: %s in %s", filepath.Base(j.OutputPath), res.Elapsed.Round(100*time.Millisecond))
		log.Debug(cfg.Verbose, "  No output file at %s", j.OutputPath)
	}
	return res
}

func logStderr(log *logging.Logger, lines []string) {
	if len(lines) == 0 {
		return
	}
	log.Error("Last script output:")
	for _, l := range lines {
		log.Error("  %s", l)
	}
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Run %s", uuid.NewString())
	log.Info("Found %d image(s) in %s", stats.Total, cfg.InputDir)
	log.Info("Model: %s, scale: %dx", cfg.Model, cfg.Scale)
	log.Info("Output: %s/<name>_%dx.<ext>", cfg.OutputDir, cfg.Scale)
	if cfg.FailOnError {
		log.Info("Exit policy: non-zero when any image fails")
	}
	log.Blank()
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d upscaled, %d failed (of %d)", stats.Upscaled, stats.Failed, stats.Total)
	if stats.Failed > 0 {
		log.Warn("  Failures: %d missing dependency, %d process failure, %d other",
			stats.MissingDependency, stats.ProcessFailures, stats.OtherFailures)
		for _, r := range stats.Results {
			if r.Err != nil {
				log.Warn("  - %s (%s)", filepath.Base(r.InputPath), r.Kind)
			}
		}
	}

	if cfg.DryRun || stats.Upscaled == 0 {
		return
	}
	log.Info("  Input: %s -> output: %s (%s)",
		display.FormatBytes(stats.TotalInputBytes),
		display.FormatBytes(stats.TotalOutputBytes),
		display.FormatRatio(stats.TotalInputBytes, stats.TotalOutputBytes))
}
