package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mmd/internal/app"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a mermaid diagram to SVG",
		Long: "Render a mermaid diagram to SVG. Reads from stdin when no file " +
			"is given; writes to stdout when --output is omitted.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}

			output, _ := cmd.Flags().GetString("output")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			noCache, _ := cmd.Flags().GetBool("no-cache")

			return c.app.Render(cmd.Context(), file, app.RenderOptions{
				Output:  output,
				Timeout: timeout,
				NoCache: noCache,
			})
		},
	}

	cmd.Flags().StringP("output", "o", "", "Write the artifact to this path instead of stdout")
	cmd.Flags().Duration("timeout", 0, "Override the render timeout")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the artifact cache and force a render")

	return cmd
}
