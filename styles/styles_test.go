package styles

import (
	"os"
	"path/filepath"
	"testing"
)

// resetGlobals restores the package-level theme and symbol state after a
// test that mutates it. These tests must not run in parallel.
func resetGlobals(t *testing.T) {
	t.Helper()
	theme := Active()
	symbols := CurrentSymbols()
	ascii := ASCIIEnabled()
	t.Cleanup(func() {
		SetTheme(theme)
		currentSymbols = symbols
		useASCII = ascii
	})
}

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"default", "mono", "ocean", "OCEAN"} {
		if _, err := ThemeByName(name); err != nil {
			t.Errorf("ThemeByName(%q) error = %v", name, err)
		}
	}
	if _, err := ThemeByName("neon"); err == nil {
		t.Error("ThemeByName(neon) should fail")
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() = %v, want 3 presets", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("ThemeNames() not sorted: %v", names)
		}
	}
}

func TestSetTheme(t *testing.T) {
	resetGlobals(t)

	SetTheme(OceanTheme)
	if Active() != OceanTheme {
		t.Error("Active() did not return the theme just set")
	}
}

func TestSetASCII(t *testing.T) {
	resetGlobals(t)

	SetASCII(true)
	if !ASCIIEnabled() {
		t.Error("ASCIIEnabled() = false after SetASCII(true)")
	}
	if CurrentSymbols().StepActive != "*" {
		t.Errorf("StepActive = %q, want ASCII glyph", CurrentSymbols().StepActive)
	}
	SetASCII(false)
	if CurrentSymbols().StepActive != "◆" {
		t.Errorf("StepActive = %q, want unicode glyph", CurrentSymbols().StepActive)
	}
}

func TestSetSymbols_PartialOverride(t *testing.T) {
	resetGlobals(t)

	before := CurrentSymbols()
	SetSymbols(Symbols{StepActive: ">", Spinner: []string{".", "o"}})

	got := CurrentSymbols()
	if got.StepActive != ">" {
		t.Errorf("StepActive = %q, want override", got.StepActive)
	}
	if len(got.Spinner) != 2 {
		t.Errorf("Spinner = %v, want override", got.Spinner)
	}
	// Untouched fields keep their values.
	if got.Bar != before.Bar || got.StepSubmit != before.StepSubmit {
		t.Error("zero fields did not fall back to the current set")
	}
}

func TestLoadTheme(t *testing.T) {
	resetGlobals(t)

	path := filepath.Join(t.TempDir(), "theme.toml")
	content := `preset = "ocean"

[colors]
primary = "#5f87ff"

[symbols]
step_active = ">"
spinner = ["-", "|"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadTheme(path); err != nil {
		t.Fatalf("LoadTheme() error = %v", err)
	}
	if CurrentSymbols().StepActive != ">" {
		t.Errorf("StepActive = %q, want file override", CurrentSymbols().StepActive)
	}
	if len(CurrentSymbols().Spinner) != 2 {
		t.Errorf("Spinner = %v, want file override", CurrentSymbols().Spinner)
	}
	// The preset's untouched colors survive the partial color override.
	if Active().Error != OceanTheme.Error {
		t.Error("preset colors were not applied")
	}
}

func TestLoadTheme_Errors(t *testing.T) {
	resetGlobals(t)

	if err := LoadTheme(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadTheme(missing) should fail")
	}

	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte("unknown_key = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadTheme(path); err == nil {
		t.Error("LoadTheme with an unknown key should fail")
	}

	if err := os.WriteFile(path, []byte(`preset = "neon"`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadTheme(path); err == nil {
		t.Error("LoadTheme with an unknown preset should fail")
	}
}
