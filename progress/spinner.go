package progress

import (
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/raphi011/ask/core"
	"github.com/raphi011/ask/styles"
)

// DefaultInterval is the spinner animation interval.
const DefaultInterval = 80 * time.Millisecond

// Stop codes select the terminal glyph of an indicator.
const (
	CodeSuccess = 0
	CodeCancel  = 1
	CodeError   = 2
)

// SpinnerOptions configures a Spinner.
type SpinnerOptions struct {
	// Output receives the frames. Defaults to os.Stderr.
	Output io.Writer
	// Interval between animation frames. Defaults to DefaultInterval.
	Interval time.Duration

	Settings core.Settings
}

// Spinner cycles an animation frame sequence on a timer next to a
// message. Start and Stop are idempotent.
type Spinner struct {
	out      io.Writer
	interval time.Duration
	settings core.Settings

	mu      sync.Mutex
	running bool
	message string
	idx     int
	frame   *core.FrameWriter
	ticker  *time.Ticker
	done    chan struct{}
	sigCh   chan os.Signal
}

// NewSpinner creates a spinner.
func NewSpinner(opts SpinnerOptions) *Spinner {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	return &Spinner{
		out:      opts.Output,
		interval: opts.Interval,
		settings: opts.Settings,
	}
}

// Start begins the animation with the given message.
func (s *Spinner) Start(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.message = message
	s.idx = 0
	s.frame = core.NewFrameWriter(s.out)
	s.frame.HideCursor()
	s.renderLocked()

	s.ticker = time.NewTicker(s.interval)
	s.done = make(chan struct{})
	s.sigCh = make(chan os.Signal, 1)
	signal.Notify(s.sigCh, os.Interrupt, syscall.SIGTERM)

	go s.loop(s.ticker, s.done, s.sigCh)
}

func (s *Spinner) loop(ticker *time.Ticker, done chan struct{}, sigCh chan os.Signal) {
	for {
		select {
		case <-done:
			return
		case sig := <-sigCh:
			// Render the cancelled state and restore the cursor, then
			// let the signal take its course.
			s.Stop("", CodeCancel)
			p, err := os.FindProcess(os.Getpid())
			if err == nil {
				p.Signal(sig) //nolint:errcheck
			}
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.running {
				s.idx++
				s.renderLocked()
			}
			s.mu.Unlock()
		}
	}
}

// Message updates the text shown on the next tick without restarting
// the animation.
func (s *Spinner) Message(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

// Stop halts the animation and renders the terminal glyph for code:
// success for 0, cancel for 1, error for anything above. An empty
// message keeps the last one. The cursor is shown again on every path.
func (s *Spinner) Stop(message string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	s.ticker.Stop()
	close(s.done)
	signal.Stop(s.sigCh)

	if message != "" {
		s.message = message
	}
	s.frame.Render(stopGlyph(code)+" "+s.message, false) //nolint:errcheck
	s.frame.Exit()
}

func (s *Spinner) renderLocked() {
	frames := styles.CurrentSymbols().Spinner
	glyph := styles.SpinnerStyle().Render(frames[s.idx%len(frames)])
	s.frame.Render(glyph+" "+s.message, false) //nolint:errcheck
}

// stopGlyph maps a stop code to its styled terminal glyph.
func stopGlyph(code int) string {
	sym := styles.CurrentSymbols()
	switch {
	case code == CodeSuccess:
		return styles.StepSubmitStyle().Render(sym.StepSubmit)
	case code == CodeCancel:
		return styles.StepCancelStyle().Render(sym.StepCancel)
	default:
		return styles.ErrorStyle().Render(sym.StepError)
	}
}
