package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dendrascience/vshell/version"
)

// NewVersionCmd creates and returns the version subcommand for the vshell
// CLI.
func NewVersionCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), version.GetInfo())
			}

			version.PrintVersion(cmd.OutOrStdout(), "vshell")

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print version information as JSON")

	return cmd
}
