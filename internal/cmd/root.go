package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dendrascience/vshell/shell"
	"github.com/dendrascience/vshell/version"
	"github.com/dendrascience/vshell/vfs"
)

// NewRootCmd creates and returns the root cobra command for the vshell CLI.
// Run without a subcommand it starts the interactive shell.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vshell",
		Short: "vshell - an interactive shell over a filesystem archive",
		Long: `vshell loads a tar, cpio or zip archive into memory and runs an
interactive shell on it. The archive must contain a root directory
("filesystem" by default); the shell starts there.

Supported shell commands:
  ls [path]             list a directory
  cd <path>             change the current directory
  uptime                show the host uptime
  rev [path]            print a file with every line reversed
  chown <path> <owner>  pretend to change the owner
  exit                  leave the shell

Every flag can also be set with an environment variable, for example
VSHELL_USER, VSHELL_HOSTNAME and VSHELL_TAR.`,
		Version:      version.GetFullVersion(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runShell,
	}

	rootCmd.Flags().String(flagUser, "", "User name shown in the prompt (env VSHELL_USER)")
	rootCmd.Flags().String(flagHostname, "", "Host name shown in the prompt (env VSHELL_HOSTNAME)")
	rootCmd.Flags().Bool(flagColor, false, "Color the prompt (env VSHELL_COLOR)")
	addArchiveFlags(rootCmd)
	addLogFlags(rootCmd)

	groupUtilities := "utilities"
	groupFilesystem := "filesystem"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFilesystem,
		Title: "Filesystem Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	mountCmd := NewMountCmd()
	statCmd := NewStatCmd()
	validateCmd := NewValidateCmd()
	packCmd := NewPackCmd()
	seedCmd := NewSeedCmd()
	versionCmd := NewVersionCmd()

	mountCmd.GroupID = groupFilesystem
	statCmd.GroupID = groupFilesystem
	validateCmd.GroupID = groupFilesystem
	packCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	rootCmd.AddCommand(mountCmd)
	rootCmd.AddCommand(statCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

func runShell(cmd *cobra.Command, _ []string) error {
	cfg, log, sync, err := setup(cmd)
	if err != nil {
		return err
	}
	defer sync()

	if err := cfg.Validate(); err != nil {
		return err
	}

	store, err := loadStore(cfg, log)
	if err != nil {
		return err
	}

	nav, err := vfs.NewNavigator(store, vfs.WithRoot(cfg.Root))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Filesystem loaded: %d files and directories.\n", store.Len())

	sh := shell.New(
		shell.Config{User: cfg.User, Hostname: cfg.Hostname},
		nav,
		shell.WithInput(cmd.InOrStdin()),
		shell.WithOutput(cmd.OutOrStdout()),
		shell.WithLogger(log),
		shell.WithColor(cfg.Color),
	)

	return sh.Run()
}
