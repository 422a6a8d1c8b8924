package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dendrascience/vshell/fusefs"
	"github.com/dendrascience/vshell/version"
)

// NewMountCmd creates and returns the mount subcommand for the vshell CLI.
// It serves the archive read-only at a mountpoint.
func NewMountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mount MOUNTPOINT",
		Short: "Mount an archive read-only",
		Long: `Mount the root directory of an archive read-only at MOUNTPOINT.

The archive is loaded into memory once. The filesystem is served until
the process is interrupted or the mountpoint is unmounted.`,
		Args: cobra.ExactArgs(1),
		RunE: runMount,
	}

	addArchiveFlags(cmd)

	return cmd
}

func runMount(cmd *cobra.Command, args []string) error {
	cfg, log, sync, err := setup(cmd)
	if err != nil {
		return err
	}
	defer sync()

	mountpoint := args[0]

	fmt.Fprintf(cmd.OutOrStdout(), "vshell %s starting...\n", version.GetFullVersion())

	store, err := loadStore(cfg, log)
	if err != nil {
		return err
	}

	fsys, err := fusefs.New(store, cfg.Root)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("serving archive",
		zap.String("archive", cfg.Tar),
		zap.String("mountpoint", mountpoint),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "%s mounted at %s\n", cfg.Tar, mountpoint)

	if err := fusefs.Mount(ctx, mountpoint, fsys, log); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Shutdown complete")

	return nil
}
