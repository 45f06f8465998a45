//go:build windows

package core

import "os"

// notifyResize is a stub on Windows, which has no SIGWINCH. Receiving
// from the nil channel blocks forever, so the event loop simply never
// sees a resize.
func notifyResize() (<-chan os.Signal, func()) {
	return nil, func() {}
}
