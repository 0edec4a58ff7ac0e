package brew

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

// requireSh skips when no POSIX shell is available to stand in for brew.
func requireSh(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	return path
}

func TestExecRunnerCapturesStdout(t *testing.T) {
	r := newExecRunner(requireSh(t))

	out, err := r.Run(context.Background(), "-c", "echo out; echo diagnostic >&2")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.TrimSpace(string(out.Stdout)); got != "out" {
		t.Errorf("Stdout = %q, want %q", got, "out")
	}
	if got := strings.TrimSpace(string(out.Stderr)); got != "diagnostic" {
		t.Errorf("Stderr = %q, want %q", got, "diagnostic")
	}
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	r := newExecRunner(requireSh(t))

	_, err := r.Run(context.Background(), "-c", "echo ignored; echo broken >&2; exit 3")
	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("Run() error = %v, want *ToolError", err)
	}
	if toolErr.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", toolErr.ExitCode)
	}
	if got := strings.TrimSpace(toolErr.Stderr); got != "broken" {
		t.Errorf("Stderr = %q, want %q", got, "broken")
	}
}

func TestExecRunnerMissingBinary(t *testing.T) {
	r := newExecRunner("/nonexistent/brew")

	_, err := r.Run(context.Background(), "--version")
	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("Run() error = %v, want *ExecError", err)
	}
	if execErr.Path != "/nonexistent/brew" {
		t.Errorf("Path = %q, want /nonexistent/brew", execErr.Path)
	}
}

func TestExecRunnerInjectsEnv(t *testing.T) {
	r := newExecRunner(requireSh(t), NoAutoUpdateEnv)

	out, err := r.Run(context.Background(), "-c", "echo $HOMEBREW_NO_AUTO_UPDATE")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.TrimSpace(string(out.Stdout)); got != "1" {
		t.Errorf("HOMEBREW_NO_AUTO_UPDATE = %q, want 1", got)
	}
}
