package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dendrascience/vshell/archive"
)

// NewStatCmd creates and returns the stat subcommand for the vshell CLI.
// It summarizes the entries of an archive.
func NewStatCmd() *cobra.Command {
	var (
		match   string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "stat",
		Short: "Summarize the entries of an archive",
		Long: `Count the files and directories of an archive and their sizes.

With --match only entries whose full path matches the glob pattern are
counted. Patterns support "**" for any number of directories.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, sync, err := setup(cmd)
			if err != nil {
				return err
			}
			defer sync()

			store, err := loadStore(cfg, log)
			if err != nil {
				return err
			}

			meta, err := archive.Summarize(store, match)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), meta)
			}

			printStat(cmd.OutOrStdout(), cfg.Tar, meta)

			return nil
		},
	}

	addArchiveFlags(cmd)
	cmd.Flags().StringVarP(&match, "match", "m", "", "Only count entries matching this glob pattern")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the summary as JSON")

	return cmd
}

func printStat(w io.Writer, path string, meta archive.Metadata) {
	fmt.Fprintf(w, "Archive: %s\n", path)
	fmt.Fprintf(w, "  Entries: %d\n", meta.Entries)
	fmt.Fprintf(w, "  Directories: %d\n", meta.Directories)
	fmt.Fprintf(w, "  Files: %d\n", meta.Files)
	fmt.Fprintf(w, "  Total size: %s\n", humanize.IBytes(uint64(meta.TotalSize)))

	if meta.LargestFile != "" {
		fmt.Fprintf(w, "  Largest file: %s (%s)\n", meta.LargestFile, humanize.IBytes(uint64(meta.LargestSize)))
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}
