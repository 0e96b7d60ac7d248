package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the mcp-powerscale application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mcp-powerscale",
	Short: "MCP server for Dell PowerScale cluster information",
	Long: `mcp-powerscale is a Model Context Protocol (MCP) server that gathers
read-only configuration and state from Dell PowerScale (OneFS) clusters.
It exposes the cluster's access zones, protocols, SyncIQ, network, and
storage pool information as MCP tools, and can also produce one-shot
reports from the command line.

When run without subcommands, it starts the MCP server (equivalent to 'mcp-powerscale serve').`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles subcommands and flags.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "mcp-powerscale version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		// Cobra itself usually prints the error. Exiting with a non-zero
		// status code indicates that an error occurred during execution.
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newGatherCmd())
}
