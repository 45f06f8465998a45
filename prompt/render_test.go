package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/ask/core"
	"github.com/raphi011/ask/styles"
)

// frames captures everything a prompt rendered, stripped of escape
// sequences, for asserting on frame structure.
func frames(out *bytes.Buffer) string {
	return ansi.Strip(out.String())
}

func TestRenderView_States(t *testing.T) {
	t.Parallel()

	sym := styles.CurrentSymbols()

	t.Run("submit frame", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}
		if _, err := Text(TextParams{
			Input:   strings.NewReader("val\r"),
			Output:  out,
			Message: "Question",
		}); err != nil {
			t.Fatalf("Text() error = %v", err)
		}
		got := frames(out)
		if !strings.Contains(got, sym.StepSubmit+" Question") {
			t.Errorf("final frame missing submit symbol: %q", got)
		}
		if !strings.Contains(got, sym.Bar+"  val") {
			t.Errorf("final frame missing summary line: %q", got)
		}
	})

	t.Run("cancel frame", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}
		_, err := Text(TextParams{
			Input:   strings.NewReader("val\x1b"),
			Output:  out,
			Message: "Question",
		})
		if !core.IsCancel(err) {
			t.Fatalf("Text() error = %v, want ErrCancelled", err)
		}
		got := frames(out)
		if !strings.Contains(got, sym.StepCancel+" Question") {
			t.Errorf("final frame missing cancel symbol: %q", got)
		}
		if !strings.Contains(got, core.DefaultSettings().CancelMessage) {
			t.Errorf("final frame missing cancel message: %q", got)
		}
	})

	t.Run("error frame", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}
		if _, err := Text(TextParams{
			Input:   strings.NewReader("\rok\r"),
			Output:  out,
			Message: "Question",
			Validate: func(value string) error {
				if value == "" {
					return errors.New("must not be empty")
				}
				return nil
			},
		}); err != nil {
			t.Fatalf("Text() error = %v", err)
		}
		got := frames(out)
		if !strings.Contains(got, sym.StepError+" Question") {
			t.Errorf("error frame missing error symbol: %q", got)
		}
		if !strings.Contains(got, "must not be empty") {
			t.Errorf("error frame missing validation message: %q", got)
		}
	})

	t.Run("active frame uses gutter", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}
		if _, err := Text(TextParams{
			Input:   strings.NewReader("\r"),
			Output:  out,
			Message: "Question",
		}); err != nil {
			t.Fatalf("Text() error = %v", err)
		}
		got := frames(out)
		if !strings.Contains(got, sym.StepActive+" Question") {
			t.Errorf("first frame missing active symbol: %q", got)
		}
		if !strings.Contains(got, sym.BarEnd) {
			t.Errorf("first frame missing closing corner: %q", got)
		}
	})
}

func TestCustomCancelMessage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, err := Text(TextParams{
		Input:    strings.NewReader("\x03"),
		Output:   out,
		Message:  "Question",
		Settings: core.Settings{CancelMessage: "Aborted by user"},
	})
	if !core.IsCancel(err) {
		t.Fatalf("Text() error = %v, want ErrCancelled", err)
	}
	if !strings.Contains(frames(out), "Aborted by user") {
		t.Errorf("cancel frame missing custom message: %q", frames(out))
	}
}
