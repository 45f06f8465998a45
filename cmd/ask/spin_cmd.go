package main

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/ask/progress"
)

// newSpinCmd returns the command that wraps stdin in a spinner, useful
// for piping long-running commands:
//
//	some-slow-command 2>&1 | ask spin "Building"
func newSpinCmd() *cobra.Command {
	var tail int

	cmd := &cobra.Command{
		Use:   "spin [message]",
		Short: "Show a spinner while streaming stdin",
		Args:  cobra.MaximumNArgs(1),
		Example: `  make build 2>&1 | ask spin "Building"
  terraform apply 2>&1 | ask spin --tail 10 "Applying"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			message := "Working"
			if len(args) > 0 {
				message = args[0]
			}

			log := progress.NewTaskLog(progress.TaskLogOptions{Limit: tail})
			log.Start(message)

			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := append(scanner.Bytes(), '\n')
				if _, err := log.Write(line); err != nil {
					log.Stop("", progress.CodeError)
					return err
				}
			}
			if err := scanner.Err(); err != nil {
				log.Stop("", progress.CodeError)
				return err
			}
			log.Stop("", progress.CodeSuccess)
			return nil
		},
	}

	cmd.Flags().IntVar(&tail, "tail", 5, "number of trailing lines to show")
	return cmd
}
