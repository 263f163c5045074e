//go:build !windows

package runner

import (
	"os/exec"
	"syscall"
)

// detach puts the child in its own session so terminal signals aimed at the
// CLI do not reach the browser.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
