package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// runBinary builds this command and runs it with extra environment entries.
// Set SKIP_INTEGRATION_TESTS=1 to skip.
func runBinary(t *testing.T, env ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	if os.Getenv("SKIP_INTEGRATION_TESTS") != "" {
		t.Skip("Skipping integration test")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not available")
	}

	binary := filepath.Join(t.TempDir(), "defect-fixture")
	buildCmd := exec.Command("go", "build", "-o", binary, ".")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build binary: %v\nOutput: %s", err, out)
	}

	var outBuf, errBuf bytes.Buffer
	cmd := exec.Command(binary)
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		exitCode = exitErr.ExitCode()
	default:
		t.Fatalf("Failed to run binary: %v", err)
	}

	return outBuf.String(), errBuf.String(), exitCode
}

func TestLiteralRunAbortsWithoutOutput(t *testing.T) {
	stdout, stderr, code := runBinary(t, "FIXTURE_DEBUG=0")

	if stdout != "" {
		t.Errorf("Expected empty stdout, got %d bytes: %q", len(stdout), stdout)
	}
	if code == 0 {
		t.Error("Expected a non-zero exit status")
	}
	if !strings.Contains(stderr, "integer divide by zero") {
		t.Errorf("Expected a divide by zero panic on stderr, got: %s", stderr)
	}
}

func TestLiteralRunDebugLoggingStaysOnStderr(t *testing.T) {
	stdout, stderr, _ := runBinary(t, "FIXTURE_DEBUG=1")

	if stdout != "" {
		t.Errorf("Expected empty stdout with debug logging, got: %q", stdout)
	}
	if !strings.Contains(stderr, "step=divide-by-zero") {
		t.Errorf("Expected the division step to be logged before the fault, got: %s", stderr)
	}
}
