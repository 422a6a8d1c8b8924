package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dendrascience/vshell/archive"
	"github.com/dendrascience/vshell/vfs"
)

// NewPackCmd creates and returns the pack subcommand for the vshell CLI.
// It builds an archive from a host directory.
func NewPackCmd() *cobra.Command {
	var (
		inputPath   string
		outputPath  string
		formatName  string
		compression string
		root        string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Build an archive from a directory tree",
		Long: `Pack a host directory tree into an archive the shell can load.

The contents of the input directory are placed below the root directory
of the archive. Only directories and regular files are packed; symbolic
links and special files are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, log, sync, err := setup(cmd)
			if err != nil {
				return err
			}
			defer sync()

			if _, err := os.Stat(inputPath); err != nil {
				return fmt.Errorf("input directory: %w", err)
			}

			if pathsOverlap(inputPath, outputPath) {
				return fmt.Errorf("%w: %s in %s", ErrOutputInsideInput, outputPath, inputPath)
			}

			if verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "Packing %s into %s (%s, %s)\n", inputPath, outputPath, formatName, compression)
			}

			count, err := writeArchive(outputPath, formatName, compression, func(w archive.Writer) (int, error) {
				return archive.Pack(w, inputPath, root, log)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Packed %d entries from %s into %s\n", count, inputPath, outputPath)

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to input directory (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output archive (required)")
	addOutputFlags(cmd, &formatName, &compression, &root)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func addOutputFlags(cmd *cobra.Command, formatName, compression, root *string) {
	cmd.Flags().StringVarP(formatName, "type", "t", archive.FormatTar.String(), "Archive format: tar, cpio or zip")
	cmd.Flags().StringVarP(compression, "compress", "z", archive.CompressionNone.String(), "Compression: none, gzip or zstd")
	cmd.Flags().StringVar(root, "root", vfs.DefaultRoot, "Root directory inside the archive")
}

// writeArchive creates the output file and runs fill with an archive writer
// for it. The file is removed if anything fails.
func writeArchive(
	outputPath, formatName, compressionName string,
	fill func(archive.Writer) (int, error),
) (count int, err error) {
	format, err := archive.ParseFormat(formatName)
	if err != nil {
		return 0, err
	}

	compression, err := archive.ParseCompression(compressionName)
	if err != nil {
		return 0, err
	}

	// Validate before the output file is created.
	if format == archive.FormatAuto {
		return 0, fmt.Errorf("%w: %s", archive.ErrUnknownFormat, format)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return 0, err
	}

	defer func() {
		err = errors.Join(err, file.Close())
		if err != nil {
			_ = os.Remove(outputPath)
		}
	}()

	compressor, err := archive.NewCompressor(file, compression)
	if err != nil {
		return 0, err
	}

	writer, err := archive.NewWriter(compressor, format)
	if err != nil {
		return 0, err
	}

	count, err = fill(writer)
	if err != nil {
		return count, err
	}

	if err := writer.Close(); err != nil {
		return count, err
	}

	if err := compressor.Close(); err != nil {
		return count, fmt.Errorf("close compressor: %w", err)
	}

	return count, nil
}

// pathsOverlap reports whether one path contains the other.
func pathsOverlap(path1, path2 string) bool {
	abs1, err1 := filepath.Abs(path1)
	abs2, err2 := filepath.Abs(path2)

	if err1 != nil || err2 != nil {
		return filepath.Clean(path1) == filepath.Clean(path2)
	}

	contains := func(parent, child string) bool {
		rel, err := filepath.Rel(parent, child)
		if err != nil {
			return false
		}

		return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
	}

	return contains(abs1, abs2) || contains(abs2, abs1)
}
