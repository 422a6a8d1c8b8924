package vfs

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned if a path is not present in the store.
	ErrNotExist = fs.ErrNotExist

	// ErrDirNotFound is returned if a directory to navigate to cannot be
	// resolved.
	ErrDirNotFound = errors.New("directory not found")

	// ErrNotDir is returned if a path exists but is not a directory.
	ErrNotDir = errors.New("not a directory")

	// ErrIsDir is returned if a path is a directory where a file is expected.
	ErrIsDir = errors.New("is a directory")

	// ErrAtRoot is returned if navigating above the root directory.
	ErrAtRoot = errors.New("already at the root directory")

	// ErrMissingParent is returned by [Store.Validate] for entries whose
	// parent directory is not in the store.
	ErrMissingParent = errors.New("parent directory missing")

	// ErrInvalidArgument is returned if an invalid argument is given.
	ErrInvalidArgument = errors.New("invalid argument")
)

// PathError records an error and the operation and file path that caused it.
type PathError = fs.PathError
