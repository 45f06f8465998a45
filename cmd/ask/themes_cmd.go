package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/ask/styles"
)

// newThemesCmd returns the command that previews the preset themes.
func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "Preview the preset themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := colorprofile.NewWriter(os.Stdout, os.Environ())
			restore := styles.Active()
			defer styles.SetTheme(restore)

			sym := styles.CurrentSymbols()
			for _, name := range styles.ThemeNames() {
				theme, err := styles.ThemeByName(name)
				if err != nil {
					return err
				}
				styles.SetTheme(theme)

				fmt.Fprintf(out, "%-10s %s %s %s %s  %s %s\n",
					name,
					styles.StepActiveStyle().Render(sym.StepActive),
					styles.StepSubmitStyle().Render(sym.StepSubmit),
					styles.StepCancelStyle().Render(sym.StepCancel),
					styles.ErrorStyle().Render(sym.StepError),
					styles.OptionSelectedStyle().Render(sym.RadioActive+" selected"),
					styles.MutedStyle().Render(sym.RadioInactive+" muted"))
			}

			fmt.Fprintf(out, "\n%s\n", styles.InfoStyle().Render("spinner: "+strings.Join(sym.Spinner, " ")))
			return nil
		},
	}
}
