package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// fakeScript stands in for inference_realesrgan.py; the fake python3 hands
// it to sh. Inputs whose name contains "bad" fail.
const fakeScript = `case "$6" in
*bad*) echo "RuntimeError: CUDA out of memory." >&2; exit 1 ;;
esac
printf '%s %s' "$2" "$4" > "$8"
`

// workDir creates a Real-ESRGAN-like working directory (script plus
// inputs/ holding images) and makes it the current directory.
func workDir(t *testing.T, images ...string) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile("inference_realesrgan.py", []byte(fakeScript), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll("inputs", 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range images {
		if err := os.WriteFile(filepath.Join("inputs", name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// fakePython puts a python3 on PATH that runs its script with sh.
func fakePython(t *testing.T) {
	t.Helper()
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	bin := t.TempDir()
	body := "#!" + sh + "\nexec " + sh + ` "$@"` + "\n"
	if err := os.WriteFile(filepath.Join(bin, "python3"), []byte(body), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(b)
}

func TestRun_EmptyInputsWithoutInterpreterExitsZero(t *testing.T) {
	dir := workDir(t)
	t.Setenv("PATH", filepath.Join(dir, "no-bin"))
	logPath := filepath.Join(dir, "run.log")

	if code := run([]string{"--no-color", "--log", logPath}); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	out := readLog(t, logPath)
	if !strings.Contains(out, "[WARN] No images found") {
		t.Errorf("empty-input warning missing:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] python3: python interpreter not found") {
		t.Errorf("interpreter warning missing:\n%s", out)
	}
	if _, err := os.Stat("results"); err != nil {
		t.Errorf("output directory not created: %v", err)
	}
}

func TestRun_MissingInterpreterFailsEachJob(t *testing.T) {
	dir := workDir(t, "a.png", "b.jpg")
	t.Setenv("PATH", filepath.Join(dir, "no-bin"))
	logPath := filepath.Join(dir, "run.log")

	if code := run([]string{"--no-color", "--no-tool-output", "--log", logPath}); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	out := readLog(t, logPath)
	for _, want := range []string{
		"Failed: a.png",
		"Failed: b.jpg",
		"0 missing dependency, 0 process failure, 2 other",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestRun_ExitPolicy(t *testing.T) {
	fakePython(t)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"failures exit zero by default", nil, 0},
		{"fail-on-error exits one", []string{"--fail-on-error"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workDir(t, "a.png", "b_bad.png", "c.png")
			args := append([]string{"--no-color", "--no-tool-output"}, tt.args...)
			if code := run(args); code != tt.want {
				t.Errorf("exit code = %d, want %d", code, tt.want)
			}
			for _, name := range []string{"a_4x.png", "c_4x.png"} {
				if _, err := os.Stat(filepath.Join("results", name)); err != nil {
					t.Errorf("missing %s: %v", name, err)
				}
			}
		})
	}
}

func TestRun_FailOnErrorWithCleanBatchExitsZero(t *testing.T) {
	fakePython(t)
	workDir(t, "a.png")
	if code := run([]string{"--no-color", "--no-tool-output", "--fail-on-error", "--scale", "8"}); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	b, err := os.ReadFile(filepath.Join("results", "a_8x.png"))
	if err != nil {
		t.Fatalf("missing output: %v", err)
	}
	if string(b) != "RealESRGAN_x4plus_anime_6B 8" {
		t.Errorf("forwarded args = %q", string(b))
	}
}

func TestRun_StartupErrors(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if code := run([]string{"--no-color"}); code != 1 {
		t.Errorf("missing inputs/: exit code = %d, want 1", code)
	}
	if code := run([]string{"--scale", "3"}); code != 1 {
		t.Errorf("bad scale: exit code = %d, want 1", code)
	}
	if code := run([]string{"--version"}); code != 0 {
		t.Errorf("--version: exit code = %d, want 0", code)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
