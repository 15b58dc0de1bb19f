package realesrgan

import (
	"strconv"

	"github.com/backmassage/esrbatch/internal/config"
	"github.com/backmassage/esrbatch/internal/job"
)

// Build returns the full argument slice for j, interpreter first. The flag
// names follow the inference script's own CLI: -n model, -s scale,
// -i input, -o output.
func Build(cfg *config.Config, j *job.Job) []string {
	return []string{
		cfg.Interpreter, cfg.ScriptPath,
		"-n", string(j.Model),
		"-s", strconv.Itoa(int(j.Scale)),
		"-i", j.InputPath,
		"-o", j.OutputPath,
	}
}
