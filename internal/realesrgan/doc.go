// Package realesrgan builds and executes inference_realesrgan.py commands
// and classifies their failures.
//
// One command is run per job:
//
//	python3 inference_realesrgan.py -n <model> -s <scale> -i <input> -o <output>
//
// The script must exist in the working directory; [CheckScript] verifies
// this before every invocation. Failures fall into three kinds (see
// [Classify]): a missing script, a non-zero exit from the child, or
// anything else that prevented the child from running.
package realesrgan
