// Package styles provides shared lipgloss styles, symbols and themes for
// the prompt and progress packages.
//
// This package centralizes color definitions and glyph sets to ensure
// visual consistency across all prompt variants and indicators. Colors
// degrade automatically when frames are written through a
// colorprofile.Writer (see the core package).
package styles

import (
	"charm.land/lipgloss/v2"
)

// Style functions return styles based on the active theme.
// These are functions instead of variables to pick up theme changes.

// TitleStyle is used for the prompt message line.
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(Active().Normal)
}

// BarStyle is used for the gutter bars framing a prompt.
func BarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Active().Muted)
}

// BarActiveStyle is used for the gutter bars of a focused prompt.
func BarActiveStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Active().Primary)
}

// StepActiveStyle is used for the step symbol of a focused prompt.
func StepActiveStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Active().Primary)
}

// StepSubmitStyle is used for the step symbol after submission.
func StepSubmitStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Active().Success)
}

// StepCancelStyle is used for the step symbol after cancellation.
func StepCancelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Active().Error)
}

// StepErrorStyle is used for the step symbol while validation fails.
func StepErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Active().Warning)
}

// OptionSelectedStyle is used for the cursor-highlighted option.
func OptionSelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Active().Accent)
}

// OptionNormalStyle is used for regular options.
func OptionNormalStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Active().Normal)
}

// MutedStyle is used for placeholders, hints and submitted values.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Active().Muted)
}

// ErrorStyle is used for validation error messages.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Active().Warning)
}

// CancelledStyle is used for the value line of a cancelled prompt.
func CancelledStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Strikethrough(true).
		Foreground(Active().Muted)
}

// CaretStyle renders the text caret as an inverted cell.
func CaretStyle() lipgloss.Style {
	return lipgloss.NewStyle().Reverse(true)
}

// SpinnerStyle is used for the spinner animation glyph.
func SpinnerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Active().Primary)
}

// InfoStyle is used for informational lines between prompts.
func InfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Active().Info).
		Italic(true)
}
