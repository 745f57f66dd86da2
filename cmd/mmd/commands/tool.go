package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mmd/internal/app"
)

func (c *CLI) newToolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tool [path]",
		Short: "Show, discover, or set the mermaid renderer binary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			discover, _ := cmd.Flags().GetBool("discover")

			return c.app.Tool(cmd.Context(), app.ToolOptions{
				Path:     path,
				Discover: discover,
			})
		},
	}

	cmd.Flags().BoolP("discover", "d", false, "Search the executable search path for the renderer")

	return cmd
}
