package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/ask/core"
	"github.com/raphi011/ask/internal/log"
	"github.com/raphi011/ask/progress"
	"github.com/raphi011/ask/prompt"
)

// newDemoCmd returns the command that walks through every prompt kind.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through every prompt kind",
		Example: `  ask demo
  ask --theme ocean demo
  ask --ascii demo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			prompt.Intro(nil, "ask demo")

			name, err := prompt.Text(prompt.TextParams{
				Context:     ctx,
				Message:     "What is your project named?",
				Placeholder: "my-project",
				Validate: func(value string) error {
					if strings.ContainsAny(value, " \t") {
						return fmt.Errorf("name must not contain whitespace")
					}
					return nil
				},
			})
			if err != nil {
				return demoDone(err)
			}

			if _, err := prompt.Password(prompt.PasswordParams{
				Context: ctx,
				Message: "Registry token",
				Validate: func(value string) error {
					if len(value) < 4 {
						return fmt.Errorf("token must be at least 4 characters")
					}
					return nil
				},
			}); err != nil {
				return demoDone(err)
			}

			lang, err := prompt.Select(prompt.SelectParams[string]{
				Context: ctx,
				Message: "Pick a language",
				Options: []prompt.Option[string]{
					{Value: "go", Label: "Go"},
					{Value: "rust", Label: "Rust"},
					{Value: "zig", Label: "Zig", Hint: "experimental"},
				},
			})
			if err != nil {
				return demoDone(err)
			}

			extras, err := prompt.MultiSelect(prompt.MultiSelectParams[string]{
				Context:  ctx,
				Message:  "Select extras",
				Optional: true,
				Options: []prompt.Option[string]{
					{Value: "lint", Label: "Linting"},
					{Value: "ci", Label: "CI workflow"},
					{Value: "docker", Label: "Dockerfile"},
				},
			})
			if err != nil {
				return demoDone(err)
			}

			tools, err := prompt.GroupMultiSelect(prompt.GroupMultiSelectParams[string]{
				Context:  ctx,
				Message:  "Pick tooling",
				Optional: true,
				Groups: []prompt.Group[string]{
					{Name: "Testing", Options: []prompt.Option[string]{
						{Value: "unit", Label: "Unit tests"},
						{Value: "fuzz", Label: "Fuzzing"},
					}},
					{Name: "Release", Options: []prompt.Option[string]{
						{Value: "goreleaser", Label: "GoReleaser"},
						{Value: "tags", Label: "Version tags"},
					}},
				},
			})
			if err != nil {
				return demoDone(err)
			}

			region, err := prompt.Suggest(prompt.SuggestParams{
				Context:     ctx,
				Message:     "Deployment region",
				Suggestions: []string{"eu-central-1", "eu-west-1", "us-east-1", "us-west-2", "ap-southeast-1"},
			})
			if err != nil {
				return demoDone(err)
			}

			log.FromContext(ctx).Debug("collected answers",
				"name", name,
				"language", lang,
				"region", region,
				"extras", strings.Join(extras, ","),
				"tools", strings.Join(tools, ","))

			ok, err := prompt.Confirm(prompt.ConfirmParams{
				Context:      ctx,
				Message:      fmt.Sprintf("Create %s (%s, %s)?", name, lang, region),
				InitialValue: true,
			})
			if err != nil {
				return demoDone(err)
			}
			if !ok {
				prompt.Outro(nil, "Nothing created.")
				return nil
			}

			spin := progress.NewSpinner(progress.SpinnerOptions{})
			spin.Start("Resolving dependencies")
			sleep(ctx, 1200*time.Millisecond)
			spin.Stop("Dependencies resolved", progress.CodeSuccess)

			bar := progress.NewBar(progress.BarOptions{Total: len(extras) + len(tools) + 1})
			bar.Start("Writing files")
			for range bar.Total() {
				sleep(ctx, 300*time.Millisecond)
				bar.Advance(1)
			}
			bar.Stop("Files written", progress.CodeSuccess)

			task := progress.NewTaskLog(progress.TaskLogOptions{})
			task.Start("Initializing repository")
			for _, line := range []string{
				"git init",
				"git add .",
				"git commit -m 'initial commit'",
			} {
				fmt.Fprintln(task, line)
				sleep(ctx, 400*time.Millisecond)
			}
			task.Stop("Repository initialized", progress.CodeSuccess)

			prompt.Note(nil, "Next steps", fmt.Sprintf("cd %s\ngit push", name))
			prompt.Outro(nil, "Done.")
			return nil
		},
	}
}

// demoDone turns a cancelled prompt into a clean exit; every other
// error propagates.
func demoDone(err error) error {
	if core.IsCancel(err) {
		return nil
	}
	return err
}

// sleep waits without outliving the command's context.
func sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
