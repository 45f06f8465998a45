package styles

import (
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/BurntSushi/toml"
)

// FileConfig is the on-disk theme file format.
//
// All fields are optional; unset colors and symbols keep their current
// values. Example:
//
//	preset = "ocean"
//
//	[colors]
//	primary = "#5f87ff"
//	accent  = "212"
//
//	[symbols]
//	step_active = ">"
//	spinner     = ["-", "\\", "|", "/"]
type FileConfig struct {
	Preset  string        `toml:"preset"`
	ASCII   bool          `toml:"ascii"`
	Colors  colorSection  `toml:"colors"`
	Symbols symbolSection `toml:"symbols"`
}

type colorSection struct {
	Primary string `toml:"primary"`
	Accent  string `toml:"accent"`
	Success string `toml:"success"`
	Error   string `toml:"error"`
	Muted   string `toml:"muted"`
	Normal  string `toml:"normal"`
	Info    string `toml:"info"`
	Warning string `toml:"warning"`
}

type symbolSection struct {
	StepActive string   `toml:"step_active"`
	StepSubmit string   `toml:"step_submit"`
	StepCancel string   `toml:"step_cancel"`
	StepError  string   `toml:"step_error"`
	Bar        string   `toml:"bar"`
	BarStart   string   `toml:"bar_start"`
	BarEnd     string   `toml:"bar_end"`
	Spinner    []string `toml:"spinner"`
}

// LoadFile parses a theme file.
func LoadFile(path string) (*FileConfig, error) {
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("theme file %s not found", path)
		}
		return nil, fmt.Errorf("parsing theme file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("theme file %s: unknown key %q", path, undecoded[0].String())
	}
	return &cfg, nil
}

// Apply activates the theme and symbol overrides described by the file.
func (c *FileConfig) Apply() error {
	theme := Active()
	if c.Preset != "" {
		t, err := ThemeByName(c.Preset)
		if err != nil {
			return err
		}
		theme = t
	}

	if c.Colors.Primary != "" {
		theme.Primary = lipgloss.Color(c.Colors.Primary)
	}
	if c.Colors.Accent != "" {
		theme.Accent = lipgloss.Color(c.Colors.Accent)
	}
	if c.Colors.Success != "" {
		theme.Success = lipgloss.Color(c.Colors.Success)
	}
	if c.Colors.Error != "" {
		theme.Error = lipgloss.Color(c.Colors.Error)
	}
	if c.Colors.Muted != "" {
		theme.Muted = lipgloss.Color(c.Colors.Muted)
	}
	if c.Colors.Normal != "" {
		theme.Normal = lipgloss.Color(c.Colors.Normal)
	}
	if c.Colors.Info != "" {
		theme.Info = lipgloss.Color(c.Colors.Info)
	}
	if c.Colors.Warning != "" {
		theme.Warning = lipgloss.Color(c.Colors.Warning)
	}
	SetTheme(theme)

	if c.ASCII {
		SetASCII(true)
	}
	SetSymbols(Symbols{
		StepActive: c.Symbols.StepActive,
		StepSubmit: c.Symbols.StepSubmit,
		StepCancel: c.Symbols.StepCancel,
		StepError:  c.Symbols.StepError,
		Bar:        c.Symbols.Bar,
		BarStart:   c.Symbols.BarStart,
		BarEnd:     c.Symbols.BarEnd,
		Spinner:    c.Symbols.Spinner,
	})
	return nil
}

// LoadTheme is a convenience wrapper combining LoadFile and Apply.
func LoadTheme(path string) error {
	cfg, err := LoadFile(path)
	if err != nil {
		return err
	}
	return cfg.Apply()
}
