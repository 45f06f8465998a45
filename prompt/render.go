package prompt

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/ask/core"
	"github.com/raphi011/ask/styles"
)

// view describes what a variant wants on screen for each engine state.
type view struct {
	message   string
	body      []string // active-state lines below the message
	summary   string   // value line once submitted
	cancelled string   // value line once cancelled ("" for none)
}

// renderView assembles the shared prompt frame: a state symbol next to
// the message, a gutter bar framing the body, and a closing corner that
// carries the validation error when present.
func renderView(p *core.Prompt, v view) string {
	sym := styles.CurrentSymbols()

	switch p.State() {
	case core.StateSubmit:
		lines := []string{
			styles.StepSubmitStyle().Render(sym.StepSubmit) + " " + styles.TitleStyle().Render(v.message),
		}
		if v.summary != "" {
			lines = append(lines, styles.BarStyle().Render(sym.Bar)+"  "+styles.MutedStyle().Render(v.summary))
		}
		return strings.Join(lines, "\n")

	case core.StateCancel:
		lines := []string{
			styles.StepCancelStyle().Render(sym.StepCancel) + " " + styles.TitleStyle().Render(v.message),
		}
		if v.cancelled != "" {
			lines = append(lines, styles.BarStyle().Render(sym.Bar)+"  "+styles.CancelledStyle().Render(v.cancelled))
		}
		lines = append(lines, styles.BarStyle().Render(sym.Bar)+"  "+styles.MutedStyle().Render(p.Settings().CancelMessage))
		return strings.Join(lines, "\n")

	case core.StateError:
		bar := styles.ErrorStyle()
		lines := []string{
			bar.Render(sym.StepError) + " " + styles.TitleStyle().Render(v.message),
		}
		for _, line := range v.body {
			lines = append(lines, bar.Render(sym.Bar)+"  "+line)
		}
		lines = append(lines, bar.Render(sym.BarEnd)+"  "+styles.ErrorStyle().Render(p.ValidationError()))
		return strings.Join(lines, "\n")

	default: // initial, active
		bar := styles.BarActiveStyle()
		lines := []string{
			styles.StepActiveStyle().Render(sym.StepActive) + " " + styles.TitleStyle().Render(v.message),
		}
		for _, line := range v.body {
			lines = append(lines, bar.Render(sym.Bar)+"  "+line)
		}
		lines = append(lines, bar.Render(sym.BarEnd))
		return strings.Join(lines, "\n")
	}
}

// styledCheckbox renders a multiselect checkbox cell.
func styledCheckbox(selected, active bool) string {
	sym := styles.CurrentSymbols()
	switch {
	case selected:
		return styles.StepSubmitStyle().Render(sym.CheckboxSelected)
	case active:
		return styles.OptionSelectedStyle().Render(sym.CheckboxActive)
	default:
		return styles.MutedStyle().Render(sym.CheckboxInactive)
	}
}

// styledRadio renders a select radio cell.
func styledRadio(active bool) string {
	sym := styles.CurrentSymbols()
	if active {
		return styles.OptionSelectedStyle().Render(sym.RadioActive)
	}
	return styles.MutedStyle().Render(sym.RadioInactive)
}

// optionLabel styles an option label, appending the hint for the
// highlighted row.
func optionLabel(label, hint string, active bool) string {
	var style lipgloss.Style
	if active {
		style = styles.OptionNormalStyle()
	} else {
		style = styles.MutedStyle()
	}
	out := style.Render(label)
	if active && hint != "" {
		out += " " + styles.MutedStyle().Render("("+hint+")")
	}
	return out
}
