//go:build unix

package ansisenor

import (
	"os"
	"syscall"
)

// exitStatus decodes a wait status, mapping death-by-signal to the
// conventional 128+signal.
func exitStatus(state *os.ProcessState) int {
	if state == nil {
		return -1
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return state.ExitCode()
}
