// Package pipeline orchestrates input discovery, per-image upscaling, and
// batch summary reporting.
//
// Images run strictly one at a time: each job blocks until the inference
// script exits. A failed job is logged and counted, and the batch moves on to
// the next image; nothing a job does can abort the batch.
package pipeline
