package process

import (
	"errors"
	"os/exec"
	"testing"
)

func TestExecRunnerSuccess(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}

	if err := NewExecRunner().Run("true"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExecRunnerDiscardsOutput(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	// Output on both streams must not reach the test's own stdout/stderr.
	if err := NewExecRunner().Run("sh", "-c", "echo out; echo err >&2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}

	err := NewExecRunner().Run("false")
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *exec.ExitError, got %v", err)
	}
}

func TestExecRunnerMissingBinary(t *testing.T) {
	err := NewExecRunner().Run("weechat-notify-send-no-such-binary")
	if !errors.Is(err, exec.ErrNotFound) {
		t.Fatalf("expected exec.ErrNotFound, got %v", err)
	}
}
