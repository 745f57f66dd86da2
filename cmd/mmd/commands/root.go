// Package commands implements the CLI commands for the mmd diagram tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/mmd/internal/adapters/detector"
	"go.trai.ch/mmd/internal/app"
	"go.trai.ch/mmd/internal/build"
)

// CLI represents the command line interface for mmd.
type CLI struct {
	app     Application
	logCtrl LogController
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Render(ctx context.Context, file string, opts app.RenderOptions) error
	Watch(ctx context.Context, file string, opts app.WatchOptions) error
	Doctor(ctx context.Context) error
	Tool(ctx context.Context, opts app.ToolOptions) error
	Clean(ctx context.Context) error
}

// LogController switches the logger output format. The concrete logger
// adapter satisfies it; a nil controller disables the --log-format flag
// handling.
type LogController interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application, logCtrl LogController) *CLI {
	rootCmd := &cobra.Command{
		Use:           "mmd",
		Short:         "Render and cache mermaid diagrams",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("log-format", "auto", "Log format: auto, pretty, or json")

	c := &CLI{
		app:     a,
		logCtrl: logCtrl,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.logCtrl == nil {
			return
		}
		format, _ := cmd.Flags().GetString("log-format")
		mode := detector.ResolveMode(detector.DetectEnvironment(), format)
		c.logCtrl.SetJSON(mode == detector.ModeJSON)
	}

	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newDoctorCmd())
	rootCmd.AddCommand(c.newToolCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
