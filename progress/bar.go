package progress

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/raphi011/ask/core"
	"github.com/raphi011/ask/styles"
)

// BarOptions configures a Bar.
type BarOptions struct {
	// Output receives the frames. Defaults to os.Stderr.
	Output io.Writer
	// Total is the value representing completion. Defaults to 100.
	Total int
	// Width is the bar's cell count. Defaults to 30.
	Width int
	// HidePercent suppresses the trailing percentage text.
	HidePercent bool
	// Interval between animation frames. Defaults to DefaultInterval.
	Interval time.Duration

	Settings core.Settings
}

// Bar renders a bounded progress bar advancing toward a total, animated
// by the same spinner-glyph ticker as Spinner.
type Bar struct {
	out         io.Writer
	total       int
	width       int
	hidePercent bool
	interval    time.Duration

	mu      sync.Mutex
	running bool
	current int
	message string
	idx     int
	frame   *core.FrameWriter
	ticker  *time.Ticker
	done    chan struct{}
	sigCh   chan os.Signal
}

// NewBar creates a progress bar.
func NewBar(opts BarOptions) *Bar {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.Total <= 0 {
		opts.Total = 100
	}
	if opts.Width <= 0 {
		opts.Width = 30
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	return &Bar{
		out:         opts.Output,
		total:       opts.Total,
		width:       opts.Width,
		hidePercent: opts.HidePercent,
		interval:    opts.Interval,
	}
}

// Total returns the configured completion value.
func (b *Bar) Total() int { return b.total }

// Current returns the counter's position.
func (b *Bar) Current() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Start begins rendering with the given message.
func (b *Bar) Start(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.running {
		return
	}
	b.running = true
	b.message = message
	b.idx = 0
	b.frame = core.NewFrameWriter(b.out)
	b.frame.HideCursor()
	b.renderLocked()

	b.ticker = time.NewTicker(b.interval)
	b.done = make(chan struct{})
	b.sigCh = make(chan os.Signal, 1)
	signal.Notify(b.sigCh, os.Interrupt, syscall.SIGTERM)

	go b.loop(b.ticker, b.done, b.sigCh)
}

func (b *Bar) loop(ticker *time.Ticker, done chan struct{}, sigCh chan os.Signal) {
	for {
		select {
		case <-done:
			return
		case sig := <-sigCh:
			b.Stop("", CodeCancel)
			p, err := os.FindProcess(os.Getpid())
			if err == nil {
				p.Signal(sig) //nolint:errcheck
			}
			return
		case <-ticker.C:
			b.mu.Lock()
			if b.running {
				b.idx++
				b.renderLocked()
			}
			b.mu.Unlock()
		}
	}
}

// Advance moves the counter forward by delta (1 when delta <= 0),
// clamped to the total.
func (b *Bar) Advance(delta int) {
	if delta <= 0 {
		delta = 1
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.setLocked(b.current + delta)
}

// Set moves the counter to an absolute position, clamped to [0, total].
func (b *Bar) Set(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.setLocked(n)
}

func (b *Bar) setLocked(n int) {
	b.current = min(max(n, 0), b.total)
	if b.running {
		b.renderLocked()
	}
}

// Message updates the text without touching the counter.
func (b *Bar) Message(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.message = message
}

// Stop halts the bar and renders the terminal glyph for code, leaving
// the cursor visible and the line terminated.
func (b *Bar) Stop(message string, code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.running {
		return
	}
	b.running = false
	b.ticker.Stop()
	close(b.done)
	signal.Stop(b.sigCh)

	if message != "" {
		b.message = message
	}
	b.frame.Render(stopGlyph(code)+" "+b.message, false) //nolint:errcheck
	b.frame.Exit()
}

func (b *Bar) renderLocked() {
	frames := styles.CurrentSymbols().Spinner
	glyph := styles.SpinnerStyle().Render(frames[b.idx%len(frames)])

	cols := core.TerminalWidth(b.out)
	// glyph, spaces, bar cells and up to " 100%" must fit one line.
	avail := cols - b.width - 10
	message := runewidth.Truncate(b.message, max(avail, 8), "…")

	line := glyph + " " + message + " " + b.renderBar()
	if !b.hidePercent {
		line += fmt.Sprintf(" %3.0f%%", float64(b.current)/float64(b.total)*100)
	}
	b.frame.Render(line, false) //nolint:errcheck
}

func (b *Bar) renderBar() string {
	sym := styles.CurrentSymbols()
	filled := b.width * b.current / b.total
	return styles.StepActiveStyle().Render(strings.Repeat(sym.BarFilled, filled)) +
		styles.MutedStyle().Render(strings.Repeat(sym.BarEmpty, b.width-filled))
}
