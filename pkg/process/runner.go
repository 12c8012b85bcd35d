// Package process runs the external programs notifications are handed to.
package process

import (
	"fmt"
	"os"
	"os/exec"
)

// Runner runs a program to completion.
type Runner interface {
	Run(name string, args ...string) error
}

// ExecRunner runs programs with os/exec, discarding everything they print.
type ExecRunner struct{}

// NewExecRunner creates a new exec runner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Ensure ExecRunner implements Runner
var _ Runner = (*ExecRunner)(nil)

// Run starts name with args and waits for it. Standard output and standard
// error both go to the null device. A missing binary or a non-zero exit
// status is returned as an error.
func (r *ExecRunner) Run(name string, args ...string) error {
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", os.DevNull, err)
	}
	defer devNull.Close()

	// #nosec G204 - The program is fixed by the notifier; arguments are passed without a shell
	cmd := exec.Command(name, args...)
	cmd.Stdout = devNull
	cmd.Stderr = devNull

	return cmd.Run()
}
