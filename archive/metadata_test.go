package archive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/vshell/archive"
	"github.com/dendrascience/vshell/vfs"
)

func TestSummarize(t *testing.T) {
	store := vfs.NewStore(demoEntries())

	t.Run("all", func(t *testing.T) {
		meta, err := archive.Summarize(store, "")
		require.NoError(t, err)
		assert.Equal(t, archive.Metadata{
			Entries:     9,
			Files:       2,
			Directories: 7,
			TotalSize:   17,
			LargestFile: "filesystem/C/users/user/file.txt",
			LargestSize: 12,
		}, meta)
	})

	t.Run("match", func(t *testing.T) {
		meta, err := archive.Summarize(store, "filesystem/D/**/*.txt")
		require.NoError(t, err)
		assert.Equal(t, archive.Metadata{
			Entries:     1,
			Files:       1,
			TotalSize:   5,
			LargestFile: "filesystem/D/Documents/1.txt",
			LargestSize: 5,
		}, meta)
	})

	t.Run("no match", func(t *testing.T) {
		meta, err := archive.Summarize(store, "**/*.json")
		require.NoError(t, err)
		assert.Zero(t, meta)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := archive.Summarize(store, "filesystem/[")
		assert.ErrorIs(t, err, archive.ErrInvalidPattern)
	})
}
