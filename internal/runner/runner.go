package runner

import (
	"fmt"
	"os/exec"
	"strings"
)

// Run executes a command and returns an error with the combined output if it fails.
func Run(cmd *exec.Cmd) error {
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("command failed: %s: %v\n%s", cmd.String(), err, strings.TrimSpace(string(output)))
	}
	return nil
}

// StartDetached starts a command without waiting for it. The child keeps
// running after we exit.
func StartDetached(cmd *exec.Cmd) error {
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("command failed to start: %s: %w", cmd.String(), err)
	}
	return cmd.Process.Release()
}
