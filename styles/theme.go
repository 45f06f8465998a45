package styles

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for prompts and indicators.
type Theme struct {
	Primary color.Color // focused step symbol and gutter bars
	Accent  color.Color // highlight color (selected options, caret line)
	Success color.Color // submitted step symbol
	Error   color.Color // cancelled step symbol, failure glyphs
	Muted   color.Color // placeholders, hints, inactive text
	Normal  color.Color // standard text
	Info    color.Color // informational text
	Warning color.Color // validation errors
}

// Preset themes
var (
	// DefaultTheme is the default color scheme.
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),  // cyan/teal
		Accent:  lipgloss.Color("212"), // pink/magenta
		Success: lipgloss.Color("82"),  // green
		Error:   lipgloss.Color("196"), // red
		Muted:   lipgloss.Color("240"), // dark gray
		Normal:  lipgloss.Color("252"), // light gray
		Info:    lipgloss.Color("244"), // gray
		Warning: lipgloss.Color("214"), // orange/yellow
	}

	// MonoTheme renders everything in shades of gray, for terminals
	// where colored output is unwanted.
	MonoTheme = Theme{
		Primary: lipgloss.Color("250"),
		Accent:  lipgloss.Color("255"),
		Success: lipgloss.Color("250"),
		Error:   lipgloss.Color("255"),
		Muted:   lipgloss.Color("240"),
		Normal:  lipgloss.Color("252"),
		Info:    lipgloss.Color("244"),
		Warning: lipgloss.Color("250"),
	}

	// OceanTheme is a blue/teal palette.
	OceanTheme = Theme{
		Primary: lipgloss.Color("39"),  // blue
		Accent:  lipgloss.Color("51"),  // cyan
		Success: lipgloss.Color("42"),  // teal green
		Error:   lipgloss.Color("203"), // salmon
		Muted:   lipgloss.Color("240"),
		Normal:  lipgloss.Color("252"),
		Info:    lipgloss.Color("245"),
		Warning: lipgloss.Color("221"), // sand
	}
)

// presets maps theme names to their definitions.
var presets = map[string]Theme{
	"default": DefaultTheme,
	"mono":    MonoTheme,
	"ocean":   OceanTheme,
}

// activeTheme holds the theme used by the style functions.
var activeTheme = DefaultTheme

// SetTheme replaces the active theme.
func SetTheme(t Theme) {
	activeTheme = t
}

// Active returns the active theme.
func Active() Theme {
	return activeTheme
}

// ThemeNames returns the preset theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName looks up a preset theme by name (case-insensitive).
func ThemeByName(name string) (Theme, error) {
	t, ok := presets[strings.ToLower(name)]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: default, mono, ocean)", name)
	}
	return t, nil
}
