//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// Isolate starts cmd in its own process group and makes context
// cancellation kill the whole group, so filters or helpers spawned by
// pandoc do not outlive it.
func Isolate(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		KillGroup(cmd.Process.Pid)
		return nil
	}
}

// KillGroup sends SIGKILL to the process group led by pid.
func KillGroup(pid int) {
	// Best-effort; exec.Cmd.Wait reports the outcome.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
