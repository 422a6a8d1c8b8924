package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dendrascience/vshell/vfs"
)

// NewValidateCmd creates and returns the validate subcommand for the vshell
// CLI. It checks an archive for entries the shell cannot reach.
func NewValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an archive for use with the shell",
		Long: `Load an archive and check its structure.

Every entry must have its parent directory in the archive and the root
directory must exist. Entries without a parent cannot be reached by cd.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, sync, err := setup(cmd)
			if err != nil {
				return err
			}
			defer sync()

			out := cmd.OutOrStdout()

			if verbose {
				fmt.Fprintf(out, "Validating archive %s\n", cfg.Tar)
			}

			store, err := loadStore(cfg, log)
			if err != nil {
				return err
			}

			var problems []string

			if err := store.Validate(); err != nil {
				problems = append(problems, strings.Split(err.Error(), "\n")...)
			}

			if _, err := vfs.NewNavigator(store, vfs.WithRoot(cfg.Root)); err != nil {
				problems = append(problems, err.Error())
			}

			if len(problems) > 0 {
				fmt.Fprintf(out, "Archive %s has %d errors:\n", cfg.Tar, len(problems))
				for _, problem := range problems {
					fmt.Fprintf(out, "  - %s\n", problem)
				}

				return fmt.Errorf("%s: %w", cfg.Tar, ErrValidationFailed)
			}

			fmt.Fprintf(out, "Archive %s is valid (%d entries)\n", cfg.Tar, store.Len())

			return nil
		},
	}

	addArchiveFlags(cmd)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}
