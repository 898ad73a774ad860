package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fuegovic/homebox-analytics/pkg/runtime/terminal/commands"
)

// CLI represents the command-line interface
type CLI struct {
	output  io.Writer
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{output: opts.Output}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "homebox-analytics",
		Short: "Financial analytics for Homebox inventories",
	}

	cmd.AddCommand(commands.NewReportCmd(cli.output))
	cmd.AddCommand(commands.NewProfilesCmd(cli.output))

	return cmd
}
