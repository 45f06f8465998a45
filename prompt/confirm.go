package prompt

import (
	"context"
	"errors"
	"io"

	"github.com/raphi011/ask/core"
)

// ConfirmParams configures a Confirm prompt.
type ConfirmParams struct {
	Context context.Context
	Input   io.Reader
	Output  io.Writer

	// Message is the question shown to the user. Required.
	Message string
	// Active is the label of the affirmative choice. Defaults to "Yes".
	Active string
	// Inactive is the label of the negative choice. Defaults to "No".
	Inactive string
	// InitialValue selects the initially highlighted choice.
	InitialValue bool

	Settings core.Settings
}

// Confirm prompts for a yes/no decision. Left/right (or up/down) toggle
// the highlighted choice, return submits it, and y/n submit immediately.
func Confirm(params ConfirmParams) (bool, error) {
	if params.Message == "" {
		return false, errors.New("prompt: Message is required")
	}
	if params.Active == "" {
		params.Active = "Yes"
	}
	if params.Inactive == "" {
		params.Inactive = "No"
	}

	var p *core.Prompt
	p, err := core.New(core.Config{
		Input:    params.Input,
		Output:   params.Output,
		Settings: params.Settings,
		Render: func(p *core.Prompt) string {
			chosen := params.Inactive
			if p.Cursor() == 0 {
				chosen = params.Active
			}
			line := styledRadio(p.Cursor() == 0) + " " + optionLabel(params.Active, "", p.Cursor() == 0) +
				" / " +
				styledRadio(p.Cursor() == 1) + " " + optionLabel(params.Inactive, "", p.Cursor() == 1)
			return renderView(p, view{
				message:   params.Message,
				body:      []string{line},
				summary:   chosen,
				cancelled: chosen,
			})
		},
	})
	if err != nil {
		return false, err
	}

	if params.InitialValue {
		p.SetCursor(0)
	} else {
		p.SetCursor(1)
	}

	// Any movement key toggles between the two choices.
	p.OnCursor(func(core.KeyName) {
		p.SetCursor(1 - p.Cursor())
	})
	// y/n set the choice and submit in one keystroke.
	p.OnConfirm(func(yes bool) {
		if yes {
			p.SetCursor(0)
		} else {
			p.SetCursor(1)
		}
		p.Submit()
	})

	if err := p.Run(params.Context); err != nil {
		return false, err
	}
	return p.Cursor() == 0, nil
}
