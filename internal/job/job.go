// Package job defines the unit of work of a batch run: one input image
// upscaled into one output image.
package job

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/backmassage/esrbatch/internal/config"
	"github.com/backmassage/esrbatch/internal/naming"
)

// Job is a single upscaling task. Paths are absolute. A Job is created per
// discovered input, run once, and never persisted.
type Job struct {
	ID         string
	InputPath  string
	OutputPath string
	Model      config.Model
	Scale      config.Scale
}

// New builds the job for inputPath using the run-wide model and scale.
// The output lands in cfg.OutputDir under the scale-annotated name.
func New(cfg *config.Config, inputPath string) (*Job, error) {
	in, err := filepath.Abs(inputPath)
	if err != nil {
		return nil, fmt.Errorf("resolve input path: %w", err)
	}
	out, err := filepath.Abs(naming.OutputPath(cfg.OutputDir, inputPath, int(cfg.Scale)))
	if err != nil {
		return nil, fmt.Errorf("resolve output path: %w", err)
	}
	return &Job{
		ID:         uuid.NewString(),
		InputPath:  in,
		OutputPath: out,
		Model:      cfg.Model,
		Scale:      cfg.Scale,
	}, nil
}

// ShortID returns the first block of the ID for log prefixes.
func (j *Job) ShortID() string {
	if len(j.ID) < 8 {
		return j.ID
	}
	return j.ID[:8]
}
