package root

import (
	"github.com/spf13/cobra"
)

// rootCmd is the base command for the events CLI. Subcommands (auth, db, events) are attached here.
var rootCmd = &cobra.Command{
	Use:           "eventctl",
	Short:         "Palmyra events CLI",
	Long:          "Operational utilities for the events catalog (schema migration, seed import, lookups, dev tokens).",
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// Root returns the mutable root command for wiring from subpackages.
func Root() *cobra.Command {
	return rootCmd
}
