//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// Isolate makes context cancellation kill cmd and all of its children.
func Isolate(cmd *exec.Cmd) {
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		KillGroup(cmd.Process.Pid)
		return nil
	}
}

// KillGroup kills a process tree using taskkill.
// /F = force kill, /T = terminate child processes (tree kill).
func KillGroup(pid int) {
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
