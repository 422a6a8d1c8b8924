package vfs

import (
	"cmp"
	"errors"
	"iter"
	"maps"
	"slices"
)

// Store maps normalized path strings to entries. It is built once by
// [NewStore] and read-only afterwards.
type Store struct {
	entries map[string]Entry
}

// NewStore creates a [Store] from entries. Later entries replace earlier
// ones with the same path, as extracting an archive would. Entries with the
// empty path (an archive's own "./" member) are ignored.
//
// Missing ancestors are not synthesized, use [Store.Validate] to find them.
func NewStore(entries []Entry) *Store {
	store := &Store{
		entries: make(map[string]Entry, len(entries)),
	}

	for _, entry := range entries {
		if entry.path.IsZero() {
			continue
		}

		store.entries[entry.path.String()] = entry
	}

	return store
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Lookup returns the entry for path.
func (s *Store) Lookup(path Path) (Entry, bool) {
	entry, exists := s.entries[path.String()]
	return entry, exists
}

// Children returns the immediate children of dir sorted by name. Every key is
// scanned and kept only if its structural parent equals dir, so deeper
// descendants and siblings sharing a name prefix never match.
func (s *Store) Children(dir Path) []Entry {
	var children []Entry

	for _, entry := range s.entries {
		parent, ok := entry.path.Parent()
		if !ok || !parent.Equal(dir) {
			continue
		}

		children = append(children, entry)
	}

	slices.SortFunc(children, func(a, b Entry) int {
		return cmp.Compare(a.Name(), b.Name())
	})

	return children
}

// All returns an iterator over all entries sorted by path.
func (s *Store) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, key := range slices.Sorted(maps.Keys(s.entries)) {
			if !yield(s.entries[key]) {
				return
			}
		}
	}
}

// Validate checks that the parent of every entry below the top level exists
// as a directory. All violations are returned joined, each as [PathError].
func (s *Store) Validate() error {
	var errs []error

	for entry := range s.All() {
		if entry.path.Len() < 2 {
			continue
		}

		parent, _ := entry.path.Parent()

		parentEntry, exists := s.Lookup(parent)
		switch {
		case !exists:
			errs = append(errs, &PathError{
				Op:   "validate",
				Path: entry.path.String(),
				Err:  ErrMissingParent,
			})
		case !parentEntry.IsDir():
			errs = append(errs, &PathError{
				Op:   "validate",
				Path: entry.path.String(),
				Err:  ErrNotDir,
			})
		}
	}

	return errors.Join(errs...)
}
