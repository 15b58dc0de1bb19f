package realesrgan

import (
	"errors"
	"os/exec"
	"regexp"
)

// ErrScriptNotFound means the inference script is not in the working directory.
var ErrScriptNotFound = errors.New("inference_realesrgan.py not found")

// Kind classifies a job failure.
type Kind int

const (
	KindNone              Kind = iota
	KindMissingDependency      // Script absent.
	KindProcessFailure         // Child exited non-zero (or was killed).
	KindOther                  // Could not build or start the command.
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMissingDependency:
		return "missing dependency"
	case KindProcessFailure:
		return "process failure"
	default:
		return "other"
	}
}

// Classify maps a job error to its [Kind]. A nil error is KindNone.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}
	if errors.Is(err, ErrScriptNotFound) {
		return KindMissingDependency
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return KindProcessFailure
	}
	return KindOther
}

// Known failure signatures in the script's stderr. Checked in order by
// [Diagnose]; the first match wins.
var (
	reOutOfMemory = regexp.MustCompile(
		`(?i)CUDA out of memory|CUDA error: out of memory|DefaultCPUAllocator: can't allocate memory`)

	reMissingModule = regexp.MustCompile(
		`ModuleNotFoundError: No module named '([^']+)'`)

	reWeightsDownload = regexp.MustCompile(
		`(?i)urlopen error|HTTP Error \d+|Connection (refused|reset)|Temporary failure in name resolution`)

	reUnreadableImage = regexp.MustCompile(
		`'NoneType' object has no attribute 'shape'|cannot identify image file`)
)

// Diagnose returns a one-line hint for a known failure signature in stderr,
// or "" when nothing matches.
func Diagnose(stderr string) string {
	if reOutOfMemory.MatchString(stderr) {
		return "out of memory during inference; try a smaller scale or free the GPU"
	}
	if m := reMissingModule.FindStringSubmatch(stderr); m != nil {
		return "Python module '" + m[1] + "' is missing; run pip install -r requirements.txt in the Real-ESRGAN directory"
	}
	if reWeightsDownload.MatchString(stderr) {
		return "model weights could not be downloaded; place the .pth file in weights/ manually"
	}
	if reUnreadableImage.MatchString(stderr) {
		return "the image could not be decoded by the inference script"
	}
	return ""
}
