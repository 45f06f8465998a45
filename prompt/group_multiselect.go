package prompt

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/raphi011/ask/core"
	"github.com/raphi011/ask/styles"
)

// Group is a named partition of options for GroupMultiSelect.
type Group[T comparable] struct {
	Name    string
	Options []Option[T]
}

// GroupMultiSelectParams configures a GroupMultiSelect prompt.
type GroupMultiSelectParams[T comparable] struct {
	Context context.Context
	Input   io.Reader
	Output  io.Writer

	// Message is the question shown to the user. Required.
	Message string
	// Groups to pick from. Required; every group needs at least one
	// option.
	Groups []Group[T]
	// DisableGroupSelection removes the group headers from the cursor
	// path; by default a header is a selectable node toggling all of
	// its members at once.
	DisableGroupSelection bool
	// GroupSpacing is the number of blank lines rendered between
	// groups. Negative values are clamped to zero.
	GroupSpacing int
	// Optional allows submitting with no selections.
	Optional bool

	Settings core.Settings
}

// gmsRow addresses one selectable row: a group header (opt == -1) or a
// member option.
type gmsRow struct {
	group int
	opt   int
}

// GroupMultiSelect prompts for any number of choices partitioned into
// named groups. Toggling a group header toggles all of its members;
// manually selecting every member of a group is equivalent to selecting
// the header. Results preserve declaration order across groups.
func GroupMultiSelect[T comparable](params GroupMultiSelectParams[T]) ([]T, error) {
	if params.Message == "" {
		return nil, errors.New("prompt: Message is required")
	}
	if len(params.Groups) == 0 {
		return nil, errors.New("prompt: GroupMultiSelect requires at least one group")
	}
	for _, g := range params.Groups {
		if len(g.Options) == 0 {
			return nil, errors.New("prompt: group " + g.Name + " has no options")
		}
	}
	spacing := max(params.GroupSpacing, 0)

	// Cursor path over all selectable rows.
	var rows []gmsRow
	for gi, g := range params.Groups {
		if !params.DisableGroupSelection {
			rows = append(rows, gmsRow{group: gi, opt: -1})
		}
		for oi := range g.Options {
			rows = append(rows, gmsRow{group: gi, opt: oi})
		}
	}

	selected := make(map[gmsRow]bool)
	groupSelected := func(gi int) bool {
		for oi := range params.Groups[gi].Options {
			if !selected[gmsRow{group: gi, opt: oi}] {
				return false
			}
		}
		return true
	}
	toggle := func(row gmsRow) {
		if row.opt >= 0 {
			if selected[row] {
				delete(selected, row)
			} else {
				selected[row] = true
			}
			return
		}
		// Header: select all members, or clear them if complete.
		all := groupSelected(row.group)
		for oi := range params.Groups[row.group].Options {
			member := gmsRow{group: row.group, opt: oi}
			if all {
				delete(selected, member)
			} else {
				selected[member] = true
			}
		}
	}
	countSelected := func() int {
		n := 0
		for _, on := range selected {
			if on {
				n++
			}
		}
		return n
	}

	var p *core.Prompt
	p, err := core.New(core.Config{
		Input:    params.Input,
		Output:   params.Output,
		Settings: params.Settings,
		Validate: func() error {
			if !params.Optional && countSelected() == 0 {
				return errors.New("select at least one option with space, then submit with return")
			}
			return nil
		},
		Render: func(p *core.Prompt) string {
			active := rows[p.Cursor()]
			var body []string
			var labels []string
			for gi, g := range params.Groups {
				if gi > 0 {
					for i := 0; i < spacing; i++ {
						body = append(body, "")
					}
				}
				headerActive := !params.DisableGroupSelection && active.group == gi && active.opt == -1
				header := styles.TitleStyle().Render(g.Name)
				if !params.DisableGroupSelection {
					header = styledCheckbox(groupSelected(gi), headerActive) + " " + header
				}
				body = append(body, header)
				for oi, o := range g.Options {
					row := gmsRow{group: gi, opt: oi}
					rowActive := active == row
					body = append(body, "  "+styledCheckbox(selected[row], rowActive)+" "+optionLabel(o.label(), o.Hint, rowActive))
					if selected[row] {
						labels = append(labels, o.label())
					}
				}
			}
			chosen := "none"
			if len(labels) > 0 {
				chosen = strings.Join(labels, ", ")
			}
			return renderView(p, view{
				message:   params.Message,
				body:      body,
				summary:   chosen,
				cancelled: chosen,
			})
		},
	})
	if err != nil {
		return nil, err
	}

	p.OnCursor(func(dir core.KeyName) {
		p.SetCursor(moveWrapped(p.Cursor(), len(rows), dir))
	})
	p.OnKey(func(key core.Key) {
		if key.Name == core.KeySpace {
			toggle(rows[p.Cursor()])
		}
	})

	if err := p.Run(params.Context); err != nil {
		return nil, err
	}

	var values []T
	for gi, g := range params.Groups {
		for oi, o := range g.Options {
			if selected[gmsRow{group: gi, opt: oi}] {
				values = append(values, o.Value)
			}
		}
	}
	return values, nil
}
