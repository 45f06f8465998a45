package core

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// FrameWriter re-renders multi-line frames in place. Every re-render
// first clears the lines of the previously written frame, so no visual
// artifacts accumulate. Styled text passes through a colorprofile.Writer
// which downsamples colors to what the terminal supports.
//
// The prompt engine uses it for every prompt; the progress package uses
// it directly for its indicators.
type FrameWriter struct {
	styled io.Writer       // colorprofile-wrapped sink for frame content
	ctrl   *termenv.Output // control sequences (cursor, erase)
	lines  int             // line count of the last written frame
	last   string
	wrote  bool
}

// NewFrameWriter builds a frame writer on top of an output sink.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{
		styled: colorprofile.NewWriter(w, os.Environ()),
		ctrl:   termenv.NewOutput(w),
	}
}

// Render writes a frame, clearing the previous one. Identical frames are
// skipped unless force is set (used on terminal resize).
func (f *FrameWriter) Render(frame string, force bool) error {
	if f.wrote {
		if frame == f.last && !force {
			return nil
		}
		f.clear()
	}
	f.last = frame
	f.lines = strings.Count(frame, "\n") + 1
	f.wrote = true
	// Raw mode disables output post-processing, so newlines need an
	// explicit carriage return.
	if _, err := io.WriteString(f.styled, strings.ReplaceAll(frame, "\n", "\r\n")); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// clear erases the previously written frame. The cursor sits on the
// frame's last line, so clearing lines-1 above it reaches the first.
func (f *FrameWriter) clear() {
	f.ctrl.ClearLines(f.lines - 1)
	f.ctrl.WriteString("\r")
}

// HideCursor hides the terminal cursor.
func (f *FrameWriter) HideCursor() {
	f.ctrl.HideCursor()
}

// Exit restores cursor visibility and terminates the final frame's line.
// Safe on every exit path, including after an output error.
func (f *FrameWriter) Exit() {
	if f.wrote {
		f.ctrl.WriteString("\r\n")
	}
	f.ctrl.ShowCursor()
}

// TerminalWidth returns the column count of w when it is a terminal,
// falling back to 80.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
