package prompt

import (
	"context"
	"errors"
	"io"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/ask/core"
	"github.com/raphi011/ask/styles"
)

// SuggestParams configures a Suggest prompt.
type SuggestParams struct {
	Context context.Context
	Input   io.Reader
	Output  io.Writer

	// Message is the question shown to the user. Required.
	Message string
	// Suggestions is the candidate list filtered as the user types.
	// Required, at least one.
	Suggestions []string
	// MaxVisible bounds the suggestion rows shown below the input.
	// Defaults to 5.
	MaxVisible int
	// Validate rejects a value with a non-nil error.
	Validate func(string) error

	Settings core.Settings
}

// Suggest prompts for free text while offering fuzzy-matched completions
// from a fixed candidate list. Up/down move the highlight, tab accepts
// the highlighted suggestion, return submits the typed value.
func Suggest(params SuggestParams) (string, error) {
	if params.Message == "" {
		return "", errors.New("prompt: Message is required")
	}
	if len(params.Suggestions) == 0 {
		return "", errors.New("prompt: Suggest requires at least one suggestion")
	}
	if params.MaxVisible <= 0 {
		params.MaxVisible = 5
	}

	// matches holds the indexes into Suggestions for the current value,
	// highlight the cursor within it.
	matches := make([]int, len(params.Suggestions))
	for i := range params.Suggestions {
		matches[i] = i
	}
	highlight := 0

	refilter := func(value string) {
		matches = matches[:0]
		if value == "" {
			for i := range params.Suggestions {
				matches = append(matches, i)
			}
		} else {
			for _, m := range fuzzy.Find(value, params.Suggestions) {
				matches = append(matches, m.Index)
			}
		}
		if highlight >= len(matches) {
			highlight = 0
		}
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
			body := []string{textLine(p, "", 0)}
			shown := 0
			for i, idx := range matches {
				if shown == params.MaxVisible {
					body = append(body, styles.MutedStyle().Render("..."))
					break
				}
				body = append(body, "  "+styledRadio(i == highlight)+" "+optionLabel(params.Suggestions[idx], "", i == highlight))
				shown++
			}
			return renderView(p, view{
				message:   params.Message,
				body:      body,
				summary:   p.Value(),
				cancelled: p.Value(),
			})
		},
	})
	if err != nil {
		return "", err
	}

	p.OnCursor(func(dir core.KeyName) {
		if len(matches) == 0 {
			return
		}
		switch dir {
		case core.KeyUp:
			highlight = (highlight - 1 + len(matches)) % len(matches)
		case core.KeyDown:
			highlight = (highlight + 1) % len(matches)
		}
	})
	p.OnKey(func(key core.Key) {
		switch key.Name {
		case core.KeyTab:
			if len(matches) > 0 {
				p.SetValue(params.Suggestions[matches[highlight]])
				refilter(p.Value())
			}
		case core.KeyChar, core.KeySpace, core.KeyBackspace, core.KeyDelete, core.KeyCtrlV:
			refilter(p.Value())
		}
	})

	if err := p.Run(params.Context); err != nil {
		return "", err
	}
	return p.Value(), nil
}
