package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

var (
	bmBinary     string
	bmBinaryOnce sync.Once
	bmBinaryErr  error
)

// getBMBinary builds the bm binary once and returns its path.
func getBMBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	bmBinaryOnce.Do(func() {
		_, filename, _, ok := runtime.Caller(0)
		if !ok {
			bmBinaryErr = os.ErrInvalid
			return
		}
		moduleRoot := filepath.Dir(filepath.Dir(filepath.Dir(filename)))

		tmpDir, err := os.MkdirTemp("", "bm-test-*")
		if err != nil {
			bmBinaryErr = err
			return
		}
		bmBinary = filepath.Join(tmpDir, "bm")

		cmd := exec.Command("go", "build", "-o", bmBinary, "./cmd/bm")
		cmd.Dir = moduleRoot
		if output, err := cmd.CombinedOutput(); err != nil {
			bmBinaryErr = &buildError{output: string(output), err: err}
			return
		}
	})
	if bmBinaryErr != nil {
		t.Fatalf("failed to build bm: %v", bmBinaryErr)
	}
	return bmBinary
}

type buildError struct {
	output string
	err    error
}

func (e *buildError) Error() string {
	return e.err.Error() + ": " + e.output
}

// runBM executes bm in dir and returns stdout, stderr and the exit code.
// XDG_CONFIG_HOME points into dir so no user config is read.
func runBM(t *testing.T, dir string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(getBMBinary(t), args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"XDG_CONFIG_HOME="+filepath.Join(dir, "config"),
		"BM_FILE=", "BM_OUTPUT_FILE=", "BM_ATOMIC_WRITE=", "BM_LOG_LEVEL=",
	)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("running bm: %v", err)
		}
		code = exitErr.ExitCode()
	}
	return stdout.String(), stderr.String(), code
}

func TestBinary_DefaultStoreInWorkingDir(t *testing.T) {
	dir := t.TempDir()

	if _, stderr, code := runBM(t, dir, "add", "--name", "alpha", "--offset", "3.5"); code != 0 {
		t.Fatalf("add: code=%d stderr=%s", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, "bookmarks")); err != nil {
		t.Fatalf("default store not created: %v", err)
	}

	stdout, stderr, code := runBM(t, dir, "query", "--name", "alpha")
	if code != 0 {
		t.Fatalf("query: code=%d stderr=%s", code, stderr)
	}
	if want := "Bookmark { name: \"alpha\", offset: 3.5 }\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestBinary_ErrorsGoToStderr(t *testing.T) {
	dir := t.TempDir()

	stdout, stderr, code := runBM(t, dir, "query", "--name", "alpha")
	if code != ExitError {
		t.Errorf("exit code = %d, want %d", code, ExitError)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if !strings.HasPrefix(stderr, "Error: ") {
		t.Errorf("stderr = %q, want an Error: line", stderr)
	}

	_, stderr, code = runBM(t, dir, "add", "--name", "alpha")
	if code != ExitUsageError {
		t.Errorf("exit code = %d, want %d", code, ExitUsageError)
	}
	if !strings.Contains(stderr, "offset") {
		t.Errorf("stderr = %q, want mention of offset", stderr)
	}
}

func TestBinary_DotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BM_FILE=from-dotenv\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// runBM sets BM_FILE to empty, which godotenv treats as already set, so
	// run without the BM_* overrides here.
	cmd := exec.Command(getBMBinary(t), "add", "--name", "alpha", "--offset", "1")
	cmd.Dir = dir
	cmd.Env = []string{"XDG_CONFIG_HOME=" + filepath.Join(dir, "config"), "HOME=" + dir}
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("add: %v\n%s", err, output)
	}
	if _, err := os.Stat(filepath.Join(dir, "from-dotenv")); err != nil {
		t.Errorf("store named in .env not created: %v", err)
	}
}
