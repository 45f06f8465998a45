package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

// State is the lifecycle state of a prompt.
type State int

const (
	// StateInitial is the state before the first render.
	StateInitial State = iota
	// StateActive is the interactive state.
	StateActive
	// StateError is a transient sub-state of active, entered when
	// validation fails and left on the next keystroke.
	StateError
	// StateSubmit is terminal: the value was accepted.
	StateSubmit
	// StateCancel is terminal: the prompt was abandoned.
	StateCancel
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateActive:
		return "active"
	case StateError:
		return "error"
	case StateSubmit:
		return "submit"
	case StateCancel:
		return "cancel"
	}
	return "unknown"
}

// Config configures a prompt engine instance.
type Config struct {
	// Input is the raw key source. Defaults to os.Stdin; when it is a
	// terminal it is switched to raw mode for the prompt's lifetime.
	Input io.Reader
	// Output receives the rendered frames. Defaults to os.Stderr so
	// stdout stays clean for piping.
	Output io.Writer
	// Render maps the current engine state to a frame. Required.
	Render func(*Prompt) string
	// InitialValue pre-fills the text value.
	InitialValue string
	// DefaultValue substitutes an empty value on submit.
	DefaultValue string
	// Placeholder is offered as the value when tab is pressed on an
	// empty prompt.
	Placeholder string
	// Validate runs on submit; a non-nil error keeps the prompt active
	// and shows the message inline.
	Validate func() error
	// TextEntry makes printable keys edit Value at the caret. When off,
	// h/j/k/l act as additional navigation keys.
	TextEntry bool
	// Settings carries the shared message strings; zero fields fall
	// back to DefaultSettings.
	Settings Settings
}

// Prompt is the engine driving a single interactive session. It owns the
// value, caret and state for its lifetime; a Prompt is not reusable once
// it reaches a terminal state.
type Prompt struct {
	cfg      Config
	settings Settings

	state  State
	value  []rune
	caret  int
	errMsg string

	frame *FrameWriter

	onKey     []func(Key)
	onCursor  []func(KeyName)
	onConfirm []func(bool)
}

// New validates the configuration and builds a prompt engine.
func New(cfg Config) (*Prompt, error) {
	if cfg.Render == nil {
		return nil, errors.New("core: Config.Render is required")
	}
	if cfg.Input == nil {
		cfg.Input = os.Stdin
	}
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	p := &Prompt{
		cfg:      cfg,
		settings: cfg.Settings.merged(),
		frame:    NewFrameWriter(cfg.Output),
	}
	p.SetValue(cfg.InitialValue)
	return p, nil
}

// OnKey registers a handler invoked for every decoded key while the
// prompt is active.
func (p *Prompt) OnKey(fn func(Key)) { p.onKey = append(p.onKey, fn) }

// OnCursor registers a handler for movement keys.
func (p *Prompt) OnCursor(fn func(KeyName)) { p.onCursor = append(p.onCursor, fn) }

// OnConfirm registers a handler for the y/n shortcut keys. Registering
// one claims y/n, so they no longer reach text entry.
func (p *Prompt) OnConfirm(fn func(bool)) { p.onConfirm = append(p.onConfirm, fn) }

// State returns the current lifecycle state.
func (p *Prompt) State() State { return p.state }

// Value returns the accumulated text value.
func (p *Prompt) Value() string { return string(p.value) }

// SetValue replaces the text value and moves the caret to its end.
func (p *Prompt) SetValue(v string) {
	p.value = []rune(v)
	p.caret = len(p.value)
}

// Cursor returns the caret offset (text prompts) or selection index
// (list prompts).
func (p *Prompt) Cursor() int { return p.caret }

// SetCursor moves the caret/selection index. Values are clamped to the
// text length only for text-entry prompts; list variants manage their
// own bounds.
func (p *Prompt) SetCursor(n int) {
	if p.cfg.TextEntry {
		n = min(max(n, 0), len(p.value))
	}
	p.caret = n
}

// ValidationError returns the message of the last failed validation, or
// "" when the prompt is not in the error state.
func (p *Prompt) ValidationError() string { return p.errMsg }

// Settings returns the merged message settings.
func (p *Prompt) Settings() Settings { return p.settings }

// Placeholder returns the configured placeholder text.
func (p *Prompt) Placeholder() string { return p.cfg.Placeholder }

// Width returns the output terminal's column count.
func (p *Prompt) Width() int { return TerminalWidth(p.cfg.Output) }

// Submit attempts to finalize the prompt, running validation first.
// No-op once the prompt reached a terminal state.
func (p *Prompt) Submit() {
	if p.terminal() {
		return
	}
	if p.cfg.Validate != nil {
		if err := p.cfg.Validate(); err != nil {
			p.state = StateError
			p.errMsg = err.Error()
			if p.errMsg == "" {
				p.errMsg = p.settings.ErrorMessage
			}
			return
		}
	}
	if p.cfg.TextEntry && len(p.value) == 0 && p.cfg.DefaultValue != "" {
		p.SetValue(p.cfg.DefaultValue)
	}
	p.errMsg = ""
	p.state = StateSubmit
}

// Cancel abandons the prompt. No-op once in a terminal state.
func (p *Prompt) Cancel() {
	if p.terminal() {
		return
	}
	p.state = StateCancel
}

func (p *Prompt) terminal() bool {
	return p.state == StateSubmit || p.state == StateCancel
}

// Run starts the interactive session and blocks until the user submits
// or cancels, or ctx is cancelled. It returns nil on submit (read the
// result through Value or the variant's own state), ErrCancelled on any
// cancellation path, and an unwrapped I/O error when the output sink or
// input source fails. A context that is already cancelled resolves
// immediately without rendering.
func (p *Prompt) Run(ctx context.Context) error {
	if p.terminal() {
		return errors.New("core: prompt already resolved")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if ctx.Err() != nil {
		p.state = StateCancel
		return ErrCancelled
	}

	if f, ok := p.cfg.Input.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		old, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			return fmt.Errorf("entering raw mode: %w", err)
		}
		defer term.Restore(int(f.Fd()), old) //nolint:errcheck
	}

	reader, err := cancelreader.NewReader(p.cfg.Input)
	if err != nil {
		return fmt.Errorf("preparing input: %w", err)
	}
	defer reader.Cancel()

	p.frame.HideCursor()
	defer p.frame.Exit()

	if err := p.render(false); err != nil {
		return err
	}
	p.state = StateActive

	keyCh, errCh, done := p.readKeys(reader)
	defer close(done)

	resizeCh, stopResize := notifyResize()
	defer stopResize()

	for {
		select {
		case <-ctx.Done():
			p.Cancel()
		case <-resizeCh:
			// Re-render the current frame at the new width.
			if err := p.render(true); err != nil {
				return err
			}
			continue
		case key := <-keyCh:
			p.handleKey(key)
		case err := <-errCh:
			// Keys decoded before the error may still be queued; apply
			// them before deciding what the error means.
			p.drainKeys(keyCh)
			if p.terminal() {
				break
			}
			if errors.Is(err, cancelreader.ErrCanceled) || errors.Is(err, io.EOF) {
				p.Cancel()
			} else {
				return fmt.Errorf("reading input: %w", err)
			}
		}

		if err := p.render(false); err != nil {
			return err
		}
		switch p.state {
		case StateSubmit:
			return nil
		case StateCancel:
			return ErrCancelled
		}
	}
}

// drainKeys applies queued key events until the channel is empty or the
// prompt resolves.
func (p *Prompt) drainKeys(keyCh <-chan Key) {
	for {
		select {
		case key := <-keyCh:
			p.handleKey(key)
			if p.terminal() {
				return
			}
		default:
			return
		}
	}
}

// readKeys decodes input chunks on a separate goroutine so the event
// loop can also react to context cancellation and terminal resizes.
func (p *Prompt) readKeys(r io.Reader) (<-chan Key, <-chan error, chan<- struct{}) {
	keyCh := make(chan Key, 16)
	errCh := make(chan error, 1)
	done := make(chan struct{})

	decoder := NewKeyDecoder(!p.cfg.TextEntry)
	go func() {
		buf := make([]byte, 256)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				for _, key := range decoder.Decode(buf[:n]) {
					select {
					case keyCh <- key:
					case <-done:
						return
					}
				}
			}
			if err != nil {
				select {
				case errCh <- err:
				case <-done:
				}
				return
			}
		}
	}()
	return keyCh, errCh, done
}

// handleKey applies one key event to the state machine. Precedence:
// cancel keys, return, placeholder tab, movement, confirm shortcuts,
// then literal character input; every non-terminal key is additionally
// dispatched to the registered key handlers.
func (p *Prompt) handleKey(key Key) {
	if p.terminal() {
		return
	}
	if p.state == StateError {
		p.state = StateActive
		p.errMsg = ""
	}

	switch {
	case key.Name == KeyCtrlC || key.Name == KeyEscape:
		p.Cancel()
		return

	case key.Name == KeyReturn:
		p.Submit()
		return

	case key.Name == KeyTab && p.cfg.TextEntry && len(p.value) == 0 && p.cfg.Placeholder != "":
		p.SetValue(p.cfg.Placeholder)

	case key.IsMovement():
		p.moveCaret(key.Name)
		for _, fn := range p.onCursor {
			fn(key.Name)
		}

	case len(p.onConfirm) > 0 && (key.Rune == 'y' || key.Rune == 'Y' || key.Rune == 'n' || key.Rune == 'N'):
		yes := key.Rune == 'y' || key.Rune == 'Y'
		for _, fn := range p.onConfirm {
			fn(yes)
		}

	case key.Name == KeyBackspace:
		if p.cfg.TextEntry && p.caret > 0 {
			p.value = append(p.value[:p.caret-1], p.value[p.caret:]...)
			p.caret--
		}

	case key.Name == KeyDelete:
		if p.cfg.TextEntry && p.caret < len(p.value) {
			p.value = append(p.value[:p.caret], p.value[p.caret+1:]...)
		}

	case key.Name == KeyCtrlV:
		if p.cfg.TextEntry {
			p.paste()
		}

	case key.Name == KeyChar || key.Name == KeySpace:
		if p.cfg.TextEntry {
			p.insertRune(key.Rune)
		}
	}

	for _, fn := range p.onKey {
		fn(key)
	}
}

// moveCaret applies movement keys to the text caret. List variants
// manage their selection index through OnCursor instead.
func (p *Prompt) moveCaret(name KeyName) {
	if !p.cfg.TextEntry {
		return
	}
	switch name {
	case KeyLeft:
		p.SetCursor(p.caret - 1)
	case KeyRight:
		p.SetCursor(p.caret + 1)
	case KeyHome:
		p.SetCursor(0)
	case KeyEnd:
		p.SetCursor(len(p.value))
	}
}

func (p *Prompt) insertRune(r rune) {
	if r == 0 {
		return
	}
	p.value = append(p.value[:p.caret], append([]rune{r}, p.value[p.caret:]...)...)
	p.caret++
}

// paste inserts the system clipboard at the caret, printable runes only.
func (p *Prompt) paste() {
	text, err := clipboard.ReadAll()
	if err != nil || text == "" {
		return
	}
	for _, r := range strings.ReplaceAll(text, "\n", " ") {
		if unicode.IsPrint(r) {
			p.insertRune(r)
		}
	}
}

func (p *Prompt) render(force bool) error {
	return p.frame.Render(p.cfg.Render(p), force)
}
