package vfs

import (
	"bytes"
	"fmt"
)

// EntryType is the type of an [Entry].
type EntryType int

const (
	// EntryTypeDirectory is a directory without content.
	EntryTypeDirectory EntryType = iota + 1
	// EntryTypeFile is a regular file with content.
	EntryTypeFile
)

// String returns a string representation of the type.
func (t EntryType) String() string {
	switch t {
	case EntryTypeDirectory:
		return "directory"
	case EntryTypeFile:
		return "file"
	default:
		return "invalid type"
	}
}

// Entry is a single node of the virtual filesystem. Entries are immutable:
// content is copied when the entry is created and again when it is read.
type Entry struct {
	path    Path
	typ     EntryType
	content []byte
}

// NewDir creates a directory entry.
func NewDir(path Path) Entry {
	return Entry{
		path: path,
		typ:  EntryTypeDirectory,
	}
}

// NewFile creates a file entry holding a copy of content.
func NewFile(path Path, content []byte) Entry {
	return Entry{
		path:    path,
		typ:     EntryTypeFile,
		content: bytes.Clone(content),
	}
}

// Path returns the full path of the entry.
func (e Entry) Path() Path { return e.path }

// Name returns the last path segment.
func (e Entry) Name() string { return e.path.Base() }

// Type returns the entry type.
func (e Entry) Type() EntryType { return e.typ }

// IsDir returns true if the entry is a directory.
func (e Entry) IsDir() bool { return e.typ == EntryTypeDirectory }

// IsFile returns true if the entry is a regular file.
func (e Entry) IsFile() bool { return e.typ == EntryTypeFile }

// Size returns the content length in bytes. Directories have size 0.
func (e Entry) Size() int64 { return int64(len(e.content)) }

// Content returns a copy of the file content. It is nil for directories.
func (e Entry) Content() []byte {
	if !e.IsFile() {
		return nil
	}

	content := bytes.Clone(e.content)
	if content == nil {
		content = []byte{}
	}

	return content
}

// ListName returns the name as rendered in a directory listing: directories
// carry a trailing separator, files are bare.
func (e Entry) ListName() string {
	if e.IsDir() {
		return e.Name() + Separator
	}

	return e.Name()
}

// String returns a string representation of the entry.
func (e Entry) String() string {
	if e.IsFile() {
		return fmt.Sprintf("%s (%s, %d bytes)", e.path, e.typ, e.Size())
	}

	return fmt.Sprintf("%s (%s)", e.path, e.typ)
}
