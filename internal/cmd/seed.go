package cmd

import (
	"fmt"
	"path"
	"slices"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dendrascience/vshell/archive"
	"github.com/dendrascience/vshell/vfs"
)

// NewSeedCmd creates and returns the seed subcommand for the vshell CLI.
// It writes a demo archive for trying out the shell.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath  string
		formatName  string
		compression string
		root        string
		noteCount   int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a demo archive",
		Long: `Generate a small demo archive for the shell.

The archive contains the directories C, D and test below the root
directory with a few text files. With --count, additional note files are
created in test/notes, each containing a single UUID line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noteCount < 0 {
				return fmt.Errorf("%w: negative count %d", vfs.ErrInvalidArgument, noteCount)
			}

			if vfs.ParsePath(root).IsZero() {
				return fmt.Errorf("%w: empty root", vfs.ErrInvalidArgument)
			}

			entries := demoEntries(root, noteCount)

			count, err := writeArchive(outputPath, formatName, compression, func(w archive.Writer) (int, error) {
				return len(entries), archive.WriteEntries(w, slices.Values(entries))
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s with %d entries\n", outputPath, count)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output archive (required)")
	addOutputFlags(cmd, &formatName, &compression, &root)
	cmd.Flags().IntVarP(&noteCount, "count", "c", 0, "Number of additional note files")

	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// demoEntries returns the demo tree below root in path order.
func demoEntries(root string, noteCount int) []vfs.Entry {
	dir := func(name string) vfs.Entry {
		return vfs.NewDir(vfs.ParsePath(path.Join(root, name)))
	}
	file := func(name, content string) vfs.Entry {
		return vfs.NewFile(vfs.ParsePath(path.Join(root, name)), []byte(content))
	}

	entries := []vfs.Entry{
		dir("."),
		dir("C"),
		dir("C/users"),
		dir("C/users/user"),
		file("C/users/user/file.txt", "hello\nworld\n"),
		dir("D"),
		dir("D/Documents"),
		file("D/Documents/1.txt", "12345"),
		file("D/Documents/2.txt", "67890"),
		dir("D/Images"),
		dir("test"),
		file("test/test.txt", "12345\n67890"),
	}

	if noteCount > 0 {
		entries = append(entries, dir("test/notes"))

		for range noteCount {
			id := uuid.NewString()
			entries = append(entries, file("test/notes/"+id+".txt", id+"\n"))
		}
	}

	return entries
}
