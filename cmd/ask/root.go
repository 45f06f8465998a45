package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/ask/internal/log"
	"github.com/raphi011/ask/styles"
)

var (
	flagTheme     string
	flagThemeFile string
	flagASCII     bool
	flagVerbose   bool
	flagQuiet     bool
)

var rootCmd = &cobra.Command{
	Use:   "ask",
	Short: "Interactive terminal prompts",
	Long: `ask renders interactive prompts and progress indicators.

The demo command walks through every prompt kind; use it to preview a
theme before wiring the library into your own tool.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger := log.New(os.Stderr, flagVerbose, flagQuiet)
		cmd.SetContext(log.WithLogger(cmd.Context(), logger))
		if flagTheme != "" {
			theme, err := styles.ThemeByName(flagTheme)
			if err != nil {
				return err
			}
			styles.SetTheme(theme)
			logger.Debug("applied theme preset", "name", flagTheme)
		}
		if flagThemeFile != "" {
			if err := styles.LoadTheme(flagThemeFile); err != nil {
				return err
			}
			logger.Debug("applied theme file", "path", flagThemeFile)
		}
		if flagASCII {
			styles.SetASCII(true)
			logger.Debug("using ascii symbols")
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "color theme preset (default, mono, ocean)")
	rootCmd.PersistentFlags().StringVar(&flagThemeFile, "theme-file", "", "path to a TOML theme file")
	rootCmd.PersistentFlags().BoolVar(&flagASCII, "ascii", false, "use ASCII symbols instead of unicode")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "print diagnostic output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-prompt output")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newSpinCmd())
	rootCmd.AddCommand(newThemesCmd())
}
