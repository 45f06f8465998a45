//go:build !windows

package core

import (
	"os"
	"os/signal"
	"syscall"
)

// notifyResize subscribes to terminal size changes. The returned stop
// function must be called to release the signal handler, keeping the
// process-wide handler table balanced across sequential prompts.
func notifyResize() (<-chan os.Signal, func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	return ch, func() {
		signal.Stop(ch)
	}
}
