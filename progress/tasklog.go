package progress

import (
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/raphi011/ask/core"
	"github.com/raphi011/ask/styles"
)

// TaskLogOptions configures a TaskLog.
type TaskLogOptions struct {
	// Output receives the frames. Defaults to os.Stderr.
	Output io.Writer
	// Limit is the number of trailing log lines kept visible.
	// Defaults to 5.
	Limit int
	// Interval between animation frames. Defaults to DefaultInterval.
	Interval time.Duration

	Settings core.Settings
}

// TaskLog streams command output underneath a spinner headline. Only the
// trailing lines are shown while running; on success the log collapses
// to the headline, on failure the visible tail is retained for
// inspection.
//
// TaskLog implements io.Writer, so it can be wired directly into an
// exec.Cmd's Stdout/Stderr.
type TaskLog struct {
	out      io.Writer
	limit    int
	interval time.Duration

	mu      sync.Mutex
	running bool
	title   string
	lines   []string
	partial string
	idx     int
	frame   *core.FrameWriter
	ticker  *time.Ticker
	done    chan struct{}
	sigCh   chan os.Signal
}

// NewTaskLog creates a task log.
func NewTaskLog(opts TaskLogOptions) *TaskLog {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.Limit <= 0 {
		opts.Limit = 5
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	return &TaskLog{
		out:      opts.Output,
		limit:    opts.Limit,
		interval: opts.Interval,
	}
}

// Start begins rendering with the given headline.
func (t *TaskLog) Start(title string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}
	t.running = true
	t.title = title
	t.lines = nil
	t.partial = ""
	t.idx = 0
	t.frame = core.NewFrameWriter(t.out)
	t.frame.HideCursor()
	t.renderLocked()

	t.ticker = time.NewTicker(t.interval)
	t.done = make(chan struct{})
	t.sigCh = make(chan os.Signal, 1)
	signal.Notify(t.sigCh, os.Interrupt, syscall.SIGTERM)

	go t.loop(t.ticker, t.done, t.sigCh)
}

func (t *TaskLog) loop(ticker *time.Ticker, done chan struct{}, sigCh chan os.Signal) {
	for {
		select {
		case <-done:
			return
		case sig := <-sigCh:
			t.Stop("", CodeCancel)
			p, err := os.FindProcess(os.Getpid())
			if err == nil {
				p.Signal(sig) //nolint:errcheck
			}
			return
		case <-ticker.C:
			t.mu.Lock()
			if t.running {
				t.idx++
				t.renderLocked()
			}
			t.mu.Unlock()
		}
	}
}

// Write appends streamed output, splitting it into log lines.
func (t *TaskLog) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.partial += string(p)
	for {
		nl := strings.IndexByte(t.partial, '\n')
		if nl < 0 {
			break
		}
		t.lines = append(t.lines, strings.TrimRight(t.partial[:nl], "\r"))
		t.partial = t.partial[nl+1:]
	}
	if t.running {
		t.renderLocked()
	}
	return len(p), nil
}

// Stop halts the log. A success code collapses the streamed lines to
// the headline; any other code keeps the visible tail on screen.
func (t *TaskLog) Stop(message string, code int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	t.running = false
	t.ticker.Stop()
	close(t.done)
	signal.Stop(t.sigCh)

	if message != "" {
		t.title = message
	}
	head := stopGlyph(code) + " " + t.title
	if code == CodeSuccess {
		t.frame.Render(head, false) //nolint:errcheck
	} else {
		t.frame.Render(strings.Join(append([]string{head}, t.tailLocked()...), "\n"), false) //nolint:errcheck
	}
	t.frame.Exit()
}

func (t *TaskLog) renderLocked() {
	frames := styles.CurrentSymbols().Spinner
	glyph := styles.SpinnerStyle().Render(frames[t.idx%len(frames)])
	all := append([]string{glyph + " " + t.title}, t.tailLocked()...)
	t.frame.Render(strings.Join(all, "\n"), false) //nolint:errcheck
}

// tailLocked styles the trailing log lines behind the gutter bar.
func (t *TaskLog) tailLocked() []string {
	sym := styles.CurrentSymbols()
	lines := t.lines
	if len(lines) > t.limit {
		lines = lines[len(lines)-t.limit:]
	}
	styled := make([]string, len(lines))
	for i, line := range lines {
		styled[i] = styles.BarStyle().Render(sym.Bar) + "  " + styles.MutedStyle().Render(line)
	}
	return styled
}
