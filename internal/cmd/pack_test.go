package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/vshell/archive"
	"github.com/dendrascience/vshell/vfs"
)

func TestPathsOverlap(t *testing.T) {
	tests := []struct {
		name     string
		path1    string
		path2    string
		expected bool
	}{
		{
			name:     "identical paths",
			path1:    "/tmp/tree",
			path2:    "/tmp/tree",
			expected: true,
		},
		{
			name:     "output inside input",
			path1:    "/tmp/tree",
			path2:    "/tmp/tree/filesystem.tar",
			expected: true,
		},
		{
			name:     "input inside output",
			path1:    "/tmp/tree/sub",
			path2:    "/tmp/tree",
			expected: true,
		},
		{
			name:     "completely separate paths",
			path1:    "/tmp/tree",
			path2:    "/srv/filesystem.tar",
			expected: false,
		},
		{
			name:     "sibling with shared prefix",
			path1:    "/tmp/tree",
			path2:    "/tmp/tree.tar",
			expected: false,
		},
		{
			name:     "relative paths - overlapping",
			path1:    "tree",
			path2:    "tree/filesystem.tar",
			expected: true,
		},
		{
			name:     "relative paths - separate",
			path1:    "tree",
			path2:    "filesystem.tar",
			expected: false,
		},
		{
			name:     "dot dot prefixed name",
			path1:    "/tmp/tree",
			path2:    "/tmp/tree/..archive",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pathsOverlap(tt.path1, tt.path2))
		})
	}
}

func TestPackCmd(t *testing.T) {
	input := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(input, "C", "users"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(input, "C", "users", "a.txt"), []byte("abc"), 0o644))

	output := filepath.Join(t.TempDir(), "filesystem.tar.zst")

	out, err := execute(t, "", "pack", "--input", input, "--output", output, "--compress", "zstd")
	require.NoError(t, err)
	assert.Equal(t, "Packed 4 entries from "+input+" into "+output+"\n", out)

	store, err := archive.Load(output)
	require.NoError(t, err)
	assert.Equal(t, 4, store.Len())
	assert.NoError(t, store.Validate())
}

func TestPackCmdRejectsOverlap(t *testing.T) {
	input := t.TempDir()
	output := filepath.Join(input, "self.tar")

	_, err := execute(t, "", "pack", "--input", input, "--output", output)
	require.ErrorIs(t, err, ErrOutputInsideInput)
	assert.NoFileExists(t, output)
}

func TestPackCmdInvalidType(t *testing.T) {
	input := t.TempDir()
	output := filepath.Join(t.TempDir(), "out.rar")

	_, err := execute(t, "", "pack", "--input", input, "--output", output, "--type", "rar")
	require.ErrorIs(t, err, archive.ErrUnknownFormat)
	assert.NoFileExists(t, output)
}

func TestSeedCmd(t *testing.T) {
	for _, format := range []string{"tar", "cpio", "zip"} {
		t.Run(format, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "demo."+format)

			out, err := execute(t, "", "seed", "--output", output, "--type", format, "--count", "3")
			require.NoError(t, err)
			assert.Equal(t, "Created "+output+" with 16 entries\n", out)

			store, err := archive.Load(output)
			require.NoError(t, err)
			assert.Equal(t, 16, store.Len())
			assert.NoError(t, store.Validate())
		})
	}
}

func TestDemoEntries(t *testing.T) {
	entries := demoEntries("filesystem", 2)
	require.Len(t, entries, 15)
	assert.Equal(t, "filesystem", entries[0].Path().String())

	store := vfs.NewStore(entries)
	assert.NoError(t, store.Validate())
	assert.Len(t, store.Children(vfs.ParsePath("filesystem/test/notes")), 2)
}
