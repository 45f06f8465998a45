package prompt

import (
	"context"
	"errors"
	"io"

	"github.com/raphi011/ask/core"
)

// MultiSelectParams configures a MultiSelect prompt.
type MultiSelectParams[T comparable] struct {
	Context context.Context
	Input   io.Reader
	Output  io.Writer

	// Message is the question shown to the user. Required.
	Message string
	// Options to pick from. Required, at least one.
	Options []Option[T]
	// InitialValues pre-selects matching options.
	InitialValues []T
	// Optional allows submitting with no selections. By default at
	// least one selection is required.
	Optional bool
	// MaxItems bounds the number of visible options; the list scrolls
	// to keep the cursor in view. 0 shows everything.
	MaxItems int

	Settings core.Settings
}

// MultiSelect prompts for any number of choices. Space toggles the
// option under the cursor, return submits. The result preserves option
// declaration order regardless of selection order.
func MultiSelect[T comparable](params MultiSelectParams[T]) ([]T, error) {
	if params.Message == "" {
		return nil, errors.New("prompt: Message is required")
	}
	if len(params.Options) == 0 {
		return nil, errors.New("prompt: MultiSelect requires at least one option")
	}

	selected := make(map[int]bool, len(params.Options))
	for i, o := range params.Options {
		for _, v := range params.InitialValues {
			if o.Value == v {
				selected[i] = true
			}
		}
	}

	win := &window{max: params.MaxItems}

	var p *core.Prompt
	p, err := core.New(core.Config{
		Input:    params.Input,
		Output:   params.Output,
		Settings: params.Settings,
		Validate: func() error {
			if !params.Optional && len(selected) == 0 {
				return errors.New("select at least one option with space, then submit with return")
			}
			return nil
		},
		Render: func(p *core.Prompt) string {
			chosen := joinLabels(params.Options, func(i int) bool { return selected[i] })
			return renderView(p, view{
				message: params.Message,
				body: optionRows(len(params.Options), win, p.Cursor(), func(i, cursor int) string {
					active := i == cursor
					return styledCheckbox(selected[i], active) + " " + optionLabel(params.Options[i].label(), params.Options[i].Hint, active)
				}),
				summary:   chosen,
				cancelled: chosen,
			})
		},
	})
	if err != nil {
		return nil, err
	}

	p.OnCursor(func(dir core.KeyName) {
		p.SetCursor(moveWrapped(p.Cursor(), len(params.Options), dir))
	})
	p.OnKey(func(key core.Key) {
		if key.Name != core.KeySpace {
			return
		}
		if selected[p.Cursor()] {
			delete(selected, p.Cursor())
		} else {
			selected[p.Cursor()] = true
		}
	})

	if err := p.Run(params.Context); err != nil {
		return nil, err
	}

	// Declaration order, not selection order.
	values := make([]T, 0, len(selected))
	for i, o := range params.Options {
		if selected[i] {
			values = append(values, o.Value)
		}
	}
	return values, nil
}
