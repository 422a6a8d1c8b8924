package archive

import "errors"

var (
	// ErrOpenArchive is returned if the archive file cannot be opened.
	ErrOpenArchive = errors.New("cannot open archive")

	// ErrUnknownFormat is returned if the archive format is not supported or
	// cannot be detected.
	ErrUnknownFormat = errors.New("unknown archive format")

	// ErrUnknownCompression is returned for unsupported compression names.
	ErrUnknownCompression = errors.New("unknown compression")

	// ErrMalformedArchive is returned if the archive cannot be parsed.
	ErrMalformedArchive = errors.New("malformed archive")

	// ErrInvalidPattern is returned by [Summarize] for invalid glob patterns.
	ErrInvalidPattern = errors.New("invalid pattern")
)
