package pipeline

import (
	"time"

	"github.com/backmassage/esrbatch/internal/job"
	"github.com/backmassage/esrbatch/internal/realesrgan"
)

// JobResult is the outcome of one job. Err is nil on success.
type JobResult struct {
	Job       *job.Job // Nil when the job could not be built.
	InputPath string
	Err       error
	Kind      realesrgan.Kind
	Elapsed   time.Duration
	OutBytes  int64
}

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total    int
	Current  int
	Upscaled int
	Failed   int

	// Failure breakdown; sums to Failed.
	MissingDependency int
	ProcessFailures   int
	OtherFailures     int

	TotalInputBytes  int64
	TotalOutputBytes int64

	Results []JobResult
}

// record appends r and updates the counters.
func (s *RunStats) record(r JobResult) {
	s.Results = append(s.Results, r)
	switch r.Kind {
	case realesrgan.KindNone:
		s.Upscaled++
		return
	case realesrgan.KindMissingDependency:
		s.MissingDependency++
	case realesrgan.KindProcessFailure:
		s.ProcessFailures++
	default:
		s.OtherFailures++
	}
	s.Failed++
}
