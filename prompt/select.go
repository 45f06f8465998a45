package prompt

import (
	"context"
	"errors"
	"io"

	"github.com/raphi011/ask/core"
	"github.com/raphi011/ask/styles"
)

// SelectParams configures a Select prompt.
type SelectParams[T comparable] struct {
	Context context.Context
	Input   io.Reader
	Output  io.Writer

	// Message is the question shown to the user. Required.
	Message string
	// Options to pick from. Required, at least one.
	Options []Option[T]
	// InitialValue highlights the matching option, when present.
	InitialValue T
	// MaxItems bounds the number of visible options; the list scrolls
	// to keep the cursor in view. 0 shows everything.
	MaxItems int

	Settings core.Settings
}

// Select prompts for a single choice. Up/down (and k/j) move the cursor
// with wraparound; return submits the option under the cursor.
func Select[T comparable](params SelectParams[T]) (T, error) {
	var zero T
	if params.Message == "" {
		return zero, errors.New("prompt: Message is required")
	}
	if len(params.Options) == 0 {
		return zero, errors.New("prompt: Select requires at least one option")
	}

	win := &window{max: params.MaxItems}

	var p *core.Prompt
	p, err := core.New(core.Config{
		Input:    params.Input,
		Output:   params.Output,
		Settings: params.Settings,
		Render: func(p *core.Prompt) string {
			chosen := params.Options[p.Cursor()].label()
			return renderView(p, view{
				message: params.Message,
				body: optionRows(len(params.Options), win, p.Cursor(), func(i, cursor int) string {
					active := i == cursor
					return styledRadio(active) + " " + optionLabel(params.Options[i].label(), params.Options[i].Hint, active)
				}),
				summary:   chosen,
				cancelled: chosen,
			})
		},
	})
	if err != nil {
		return zero, err
	}

	for i, o := range params.Options {
		if o.Value == params.InitialValue {
			p.SetCursor(i)
			break
		}
	}

	p.OnCursor(func(dir core.KeyName) {
		p.SetCursor(moveWrapped(p.Cursor(), len(params.Options), dir))
	})

	if err := p.Run(params.Context); err != nil {
		return zero, err
	}
	return params.Options[p.Cursor()].Value, nil
}

// moveWrapped moves a single-axis cursor. Up and left are synonyms, as
// are down and right; both ends wrap around.
func moveWrapped(cursor, n int, dir core.KeyName) int {
	switch dir {
	case core.KeyUp, core.KeyLeft:
		return (cursor - 1 + n) % n
	case core.KeyDown, core.KeyRight:
		return (cursor + 1) % n
	case core.KeyHome:
		return 0
	case core.KeyEnd:
		return n - 1
	}
	return cursor
}

// optionRows renders the visible slice of an option list, with ellipsis
// markers when rows are hidden beyond either edge of the window.
func optionRows(n int, win *window, cursor int, row func(i, cursor int) string) []string {
	start, end := win.slice(cursor, n)
	var lines []string
	if win.ellipsisTop() {
		lines = append(lines, styles.MutedStyle().Render("..."))
	}
	for i := start; i < end; i++ {
		lines = append(lines, row(i, cursor))
	}
	if win.ellipsisBottom(n) {
		lines = append(lines, styles.MutedStyle().Render("..."))
	}
	return lines
}
