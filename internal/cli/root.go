package cli

import (
	"github.com/jammission/jamsetup/internal/filesystem"
	"github.com/jammission/jamsetup/internal/python"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, tool python.Toolchain) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jamsetup",
		Short: "Prepare and run the JAM Mission site from a source checkout",
		Long: `jamsetup prepares a runnable instance of the JAM Mission site:
it creates an isolated virtual environment, installs the declared
dependencies, applies database migrations and collects static assets,
stopping at the first step that fails.

Run it from the root of the project checkout.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to `jamsetup setup` when no subcommand is provided.
			return (&SetupCommand{fs: fs, tool: tool}).Run(cmd, args)
		},
	}

	// Add subcommands
	rootCmd.AddCommand(NewSetupCommand(fs, tool))
	rootCmd.AddCommand(NewCheckCommand(fs, tool))
	rootCmd.AddCommand(NewDepsCommand(fs))
	rootCmd.AddCommand(NewServeCommand(fs, tool))
	rootCmd.AddCommand(NewManageCommand(fs, tool))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	tool := python.NewOSToolchain()

	rootCmd := NewRootCommand(fs, tool)

	return rootCmd.Execute()
}
