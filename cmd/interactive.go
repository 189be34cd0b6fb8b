package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/tasksort/internal/adapters/input"
)

func newInteractiveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Enter pairs at a prompt; end with Ctrl-D to print the plan",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			icfg := input.InteractiveConfig{
				Prompt:      input.DefaultPrompt,
				HistoryFile: c.cfg.Input.HistoryFile,
				Separator:   c.cfg.Input.Separator,
				// Prompts go to stderr so that stdout only carries the plan.
				Stdout: cmd.ErrOrStderr(),
			}
			if in := cmd.InOrStdin(); in != os.Stdin {
				icfg.Stdin = io.NopCloser(in)
			}
			reader, err := input.NewInteractiveReader(icfg)
			if err != nil {
				return err
			}
			sorter, err := c.newSorter(cmd, reader)
			if err != nil {
				return err
			}
			_, err = sorter.Run(cmd.Context())
			return err
		},
	}
}
