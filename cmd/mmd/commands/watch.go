package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mmd/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-render a diagram whenever the source file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			return c.app.Watch(cmd.Context(), args[0], app.WatchOptions{
				Output:  output,
				Timeout: timeout,
			})
		},
	}

	cmd.Flags().StringP("output", "o", "", "Write the artifact to this path on every render")
	cmd.Flags().Duration("timeout", 0, "Override the render timeout")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
