package prompt

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/raphi011/ask/core"
)

// DefaultMask is the glyph substituted for password characters.
const DefaultMask = '•'

// PasswordParams configures a Password prompt.
type PasswordParams struct {
	Context context.Context
	Input   io.Reader
	Output  io.Writer

	// Message is the question shown to the user. Required.
	Message string
	// Mask overrides the glyph shown per character. Defaults to
	// DefaultMask.
	Mask rune
	// Validate rejects a value with a non-nil error.
	Validate func(string) error

	Settings core.Settings
}

// Password prompts for a line of text rendered masked. The real value is
// retained internally and returned on submit.
func Password(params PasswordParams) (string, error) {
	if params.Message == "" {
		return "", errors.New("prompt: Message is required")
	}
	mask := params.Mask
	if mask == 0 {
		mask = DefaultMask
	}

	var p *core.Prompt
	p, err := core.New(core.Config{
		Input:     params.Input,
		Output:    params.Output,
		TextEntry: true,
		Settings:  params.Settings,
		Validate: func() error {
			if params.Validate == nil {
				return nil
			}
			return params.Validate(p.Value())
		},
		Render: func(p *core.Prompt) string {
			masked := strings.Repeat(string(mask), len([]rune(p.Value())))
			return renderView(p, view{
				message:   params.Message,
				body:      []string{textLine(p, "", mask)},
				summary:   masked,
				cancelled: masked,
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
