// Package progress provides timer-driven terminal indicators.
//
// Spinner, Bar and TaskLog render a periodically updating indicator
// independent of keyboard input. While active they register interrupt
// handlers so an external signal renders the cancelled state and
// restores cursor visibility before the process exits; the handlers are
// removed again on Stop, keeping the process-wide handler table balanced
// across sequential indicators.
package progress
