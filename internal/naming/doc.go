// Package naming derives output file paths from input paths.
//
// An output keeps the input's stem and extension and gains a "_{scale}x"
// suffix, so "cat.PNG" upscaled 4x becomes "cat_4x.PNG". Different scales
// of the same source never collide; re-running with the same scale
// overwrites the earlier result.
package naming
