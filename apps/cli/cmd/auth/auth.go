package auth

import "github.com/spf13/cobra"

// Command groups authentication-related helpers.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication utilities",
		Long:  "Authentication utilities for local runs (unsigned dev tokens accepted when AUTH_PROVIDER=dev).",
	}

	cmd.AddCommand(devTokenCommand())

	return cmd
}
