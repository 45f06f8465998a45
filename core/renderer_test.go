package core

import (
	"bytes"
	"strings"
	"testing"
)

func TestFrameWriter_Render(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	f := NewFrameWriter(out)

	if err := f.Render("one\ntwo", false); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out.String(), "one\r\ntwo") {
		t.Errorf("frame newlines not converted to CRLF: %q", out.String())
	}

	// Identical frames are skipped.
	n := out.Len()
	if err := f.Render("one\ntwo", false); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out.Len() != n {
		t.Error("identical frame was re-rendered")
	}

	// Force re-renders even an identical frame.
	if err := f.Render("one\ntwo", true); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out.Len() == n {
		t.Error("forced render wrote nothing")
	}

	// A changed frame clears the previous one first.
	if err := f.Render("three", false); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out.String(), "three") {
		t.Errorf("changed frame missing from output: %q", out.String())
	}
}

func TestFrameWriter_Exit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	f := NewFrameWriter(out)
	f.HideCursor()
	if err := f.Render("frame", false); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	f.Exit()

	s := out.String()
	if !strings.Contains(s, "\x1b[?25l") {
		t.Error("cursor was never hidden")
	}
	if !strings.Contains(s, "\x1b[?25h") {
		t.Error("cursor was not restored")
	}
	if !strings.HasSuffix(s[:strings.LastIndex(s, "\x1b[?25h")], "\r\n") {
		t.Error("final frame line was not terminated before restoring the cursor")
	}
}

func TestFrameWriter_ExitWithoutRender(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	f := NewFrameWriter(out)
	f.Exit()
	if strings.Contains(out.String(), "\r\n") {
		t.Error("Exit() without a frame should not emit a line ending")
	}
}

func TestTerminalWidth_Fallback(t *testing.T) {
	t.Parallel()

	if got := TerminalWidth(&bytes.Buffer{}); got != 80 {
		t.Errorf("TerminalWidth(buffer) = %d, want 80", got)
	}
}
