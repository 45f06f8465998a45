package prompt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/ask/styles"
)

// Message helpers decorate plain text in the prompt frame style. They
// are pure text transforms plus a single write; no engine state is
// involved.

func messageWriter(w io.Writer) io.Writer {
	if w == nil {
		w = os.Stderr
	}
	return colorprofile.NewWriter(w, os.Environ())
}

// Intro opens a prompt session with a title line.
func Intro(w io.Writer, title string) {
	sym := styles.CurrentSymbols()
	fmt.Fprintf(messageWriter(w), "%s %s\r\n",
		styles.BarStyle().Render(sym.BarStart),
		styles.TitleStyle().Render(title))
}

// Outro closes a prompt session with a final message.
func Outro(w io.Writer, message string) {
	sym := styles.CurrentSymbols()
	fmt.Fprintf(messageWriter(w), "%s\r\n%s %s\r\n",
		styles.BarStyle().Render(sym.Bar),
		styles.BarStyle().Render(sym.BarEnd),
		message)
}

// Info writes an informational line between prompts.
func Info(w io.Writer, message string) {
	stepMessage(w, styles.MutedStyle().Render(styles.CurrentSymbols().StepSubmit), message)
}

// Success writes a success line between prompts.
func Success(w io.Writer, message string) {
	stepMessage(w, styles.StepSubmitStyle().Render(styles.CurrentSymbols().StepSubmit), message)
}

// Warn writes a warning line between prompts.
func Warn(w io.Writer, message string) {
	stepMessage(w, styles.ErrorStyle().Render(styles.CurrentSymbols().StepError), message)
}

// Error writes an error line between prompts.
func Error(w io.Writer, message string) {
	stepMessage(w, styles.StepCancelStyle().Render(styles.CurrentSymbols().StepCancel), message)
}

// Note renders a titled message inside a rounded border, for longer
// asides between prompts.
func Note(w io.Writer, title, message string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Active().Muted).
		Padding(0, 1).
		Render(message)
	out := messageWriter(w)
	fmt.Fprintf(out, "%s %s\r\n", styles.StepSubmitStyle().Render(styles.CurrentSymbols().StepSubmit), styles.TitleStyle().Render(title))
	for _, line := range strings.Split(box, "\n") {
		fmt.Fprintf(out, "%s\r\n", line)
	}
}

func stepMessage(w io.Writer, symbol, message string) {
	sym := styles.CurrentSymbols()
	out := messageWriter(w)
	lines := strings.Split(message, "\n")
	fmt.Fprintf(out, "%s %s\r\n", symbol, lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintf(out, "%s %s\r\n", styles.BarStyle().Render(sym.Bar), line)
	}
}
