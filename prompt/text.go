package prompt

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/raphi011/ask/core"
	"github.com/raphi011/ask/styles"
)

// TextParams configures a Text prompt.
type TextParams struct {
	Context context.Context
	Input   io.Reader
	Output  io.Writer

	// Message is the question shown to the user. Required.
	Message string
	// Placeholder is shown dimmed while the value is empty and can be
	// accepted with tab.
	Placeholder string
	// DefaultValue substitutes an empty value on submit.
	DefaultValue string
	// InitialValue pre-fills the input.
	InitialValue string
	// Validate rejects a value with a non-nil error, keeping the prompt
	// active with the message shown inline.
	Validate func(string) error

	Settings core.Settings
}

// Text prompts for a single line of text. It returns the submitted value
// or core.ErrCancelled.
func Text(params TextParams) (string, error) {
	if params.Message == "" {
		return "", errors.New("prompt: Message is required")
	}

	var p *core.Prompt
	p, err := core.New(core.Config{
		Input:        params.Input,
		Output:       params.Output,
		InitialValue: params.InitialValue,
		DefaultValue: params.DefaultValue,
		Placeholder:  params.Placeholder,
		TextEntry:    true,
		Settings:     params.Settings,
		Validate: func() error {
			if params.Validate == nil {
				return nil
			}
			return params.Validate(p.Value())
		},
		Render: func(p *core.Prompt) string {
			return renderView(p, view{
				message:   params.Message,
				body:      []string{textLine(p, params.Placeholder, 0)},
				summary:   p.Value(),
				cancelled: p.Value(),
			})
		},
	})
	if err != nil {
		return "", err
	}

	if err := p.Run(params.Context); err != nil {
		return "", err
	}
	return p.Value(), nil
}

// textLine renders the editable value with its caret. A mask rune other
// than zero substitutes every character (password entry).
func textLine(p *core.Prompt, placeholder string, mask rune) string {
	value := []rune(p.Value())
	if len(value) == 0 && placeholder != "" {
		// Show the placeholder with the caret over its first character.
		ph := []rune(placeholder)
		return styles.CaretStyle().Render(string(ph[0])) + styles.MutedStyle().Render(string(ph[1:]))
	}

	display := value
	if mask != 0 {
		display = []rune(strings.Repeat(string(mask), len(value)))
	}

	caret := p.Cursor()
	if caret >= len(display) {
		// Block glyph at end-of-string instead of inverting a cell.
		return string(display) + styles.CurrentSymbols().Caret
	}
	return string(display[:caret]) +
		styles.CaretStyle().Render(string(display[caret])) +
		string(display[caret+1:])
}
