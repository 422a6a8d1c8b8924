package archive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/vshell/archive"
)

func TestParseFormat(t *testing.T) {
	for _, format := range []archive.Format{
		archive.FormatAuto,
		archive.FormatTar,
		archive.FormatCPIO,
		archive.FormatZip,
	} {
		parsed, err := archive.ParseFormat(format.String())
		require.NoError(t, err)
		assert.Equal(t, format, parsed)
	}

	parsed, err := archive.ParseFormat("TAR")
	require.NoError(t, err)
	assert.Equal(t, archive.FormatTar, parsed)

	_, err = archive.ParseFormat("rar")
	assert.ErrorIs(t, err, archive.ErrUnknownFormat)
}

func TestParseCompression(t *testing.T) {
	parsed, err := archive.ParseCompression("")
	require.NoError(t, err)
	assert.Equal(t, archive.CompressionNone, parsed)

	parsed, err = archive.ParseCompression("zstd")
	require.NoError(t, err)
	assert.Equal(t, archive.CompressionZstd, parsed)
	assert.Equal(t, ".zst", parsed.Extension())

	_, err = archive.ParseCompression("bzip2")
	assert.ErrorIs(t, err, archive.ErrUnknownCompression)
}

func TestNewWriterRejectsAuto(t *testing.T) {
	_, err := archive.NewWriter(nil, archive.FormatAuto)
	assert.ErrorIs(t, err, archive.ErrUnknownFormat)
}
