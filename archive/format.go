package archive

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Format is an archive container format.
type Format int

const (
	// FormatAuto detects the format from the stream.
	FormatAuto Format = iota
	// FormatTar is a POSIX tar archive.
	FormatTar
	// FormatCPIO is an SVR4 cpio archive.
	FormatCPIO
	// FormatZip is a zip archive.
	FormatZip
)

var formatNames = map[Format]string{
	FormatAuto: "auto",
	FormatTar:  "tar",
	FormatCPIO: "cpio",
	FormatZip:  "zip",
}

// String returns the name of the format as accepted by [ParseFormat].
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the [Format] for the given name.
func ParseFormat(name string) (Format, error) {
	for format, formatName := range formatNames {
		if strings.EqualFold(name, formatName) {
			return format, nil
		}
	}

	return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Compression is a stream compression applied around tar and cpio archives.
type Compression int

const (
	// CompressionNone is an uncompressed stream.
	CompressionNone Compression = iota
	// CompressionGzip is a gzip stream.
	CompressionGzip
	// CompressionZstd is a zstandard stream.
	CompressionZstd
)

var compressionNames = map[Compression]string{
	CompressionNone: "none",
	CompressionGzip: "gzip",
	CompressionZstd: "zstd",
}

// String returns the name of the compression as accepted by
// [ParseCompression].
func (c Compression) String() string {
	if name, ok := compressionNames[c]; ok {
		return name
	}

	return fmt.Sprintf("Compression(%d)", int(c))
}

// Extension returns the conventional file name suffix.
func (c Compression) Extension() string {
	switch c {
	case CompressionGzip:
		return ".gz"
	case CompressionZstd:
		return ".zst"
	default:
		return ""
	}
}

// ParseCompression returns the [Compression] for the given name. An empty
// name is [CompressionNone].
func ParseCompression(name string) (Compression, error) {
	if name == "" {
		return CompressionNone, nil
	}

	for compression, compressionName := range compressionNames {
		if strings.EqualFold(name, compressionName) {
			return compression, nil
		}
	}

	return CompressionNone, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
}

// sniffLen is the number of bytes inspected for format detection. It covers
// a tar header and the local file header of a zip archive.
const sniffLen = 3072

var cpioMagics = [][]byte{
	[]byte("070701"),
	[]byte("070702"),
}

func isCPIO(head []byte) bool {
	for _, magic := range cpioMagics {
		if bytes.HasPrefix(head, magic) {
			return true
		}
	}

	return false
}

// is reports whether the detected type or any of its parents matches one of
// the given mime types.
func is(mtype *mimetype.MIME, mimes ...string) bool {
	for m := mtype; m != nil; m = m.Parent() {
		for _, mime := range mimes {
			if m.Is(mime) {
				return true
			}
		}
	}

	return false
}

func detectCompression(head []byte) Compression {
	mtype := mimetype.Detect(head)

	switch {
	case is(mtype, "application/gzip"):
		return CompressionGzip
	case is(mtype, "application/zstd"):
		return CompressionZstd
	default:
		return CompressionNone
	}
}

func detectFormat(head []byte) Format {
	if isCPIO(head) {
		return FormatCPIO
	}

	mtype := mimetype.Detect(head)

	switch {
	case is(mtype, "application/x-tar"):
		return FormatTar
	case is(mtype, "application/zip"):
		return FormatZip
	case is(mtype, "application/x-cpio"):
		return FormatCPIO
	default:
		return FormatAuto
	}
}
