package cmd

import "errors"

var (
	// ErrValidationFailed is returned by validate if the archive has
	// problems.
	ErrValidationFailed = errors.New("validation failed")

	// ErrOutputInsideInput is returned by pack if the output file would be
	// part of the packed tree.
	ErrOutputInsideInput = errors.New("output path overlaps input directory")
)
