package core

import "errors"

// ErrCancelled is returned by Run when the user aborts a prompt with
// ctrl-c or escape, or when the supplied context is cancelled. It is a
// sentinel: compare with [IsCancel] (or errors.Is), never by message.
var ErrCancelled = errors.New("prompt cancelled")

// IsCancel reports whether err represents a cancelled prompt.
func IsCancel(err error) bool {
	return errors.Is(err, ErrCancelled)
}
