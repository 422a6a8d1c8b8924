package vfs

import (
	"fmt"
	"strings"
)

// DefaultRoot is the name of the root directory every archive is expected to
// contain.
const DefaultRoot = "filesystem"

const (
	homeAlias = "~"

	opChangeDir   = "cd"
	opList        = "ls"
	opReverse     = "rev"
	opChangeOwner = "chown"
)

// Option configures a [Navigator].
type Option func(*Navigator)

// WithRoot sets the root directory. It defaults to [DefaultRoot].
func WithRoot(name string) Option {
	return func(n *Navigator) {
		n.root = ParsePath(name)
	}
}

// Navigator holds a [Store] and the current directory. All operations
// resolve paths against the current directory or the root.
//
// The current directory is always a directory entry of the store at or below
// the root.
type Navigator struct {
	store *Store
	root  Path
	cwd   Path
}

// NewNavigator creates a [Navigator] positioned at the root directory. The
// root must exist in the store as a directory.
func NewNavigator(store *Store, opts ...Option) (*Navigator, error) {
	nav := &Navigator{
		store: store,
		root:  ParsePath(DefaultRoot),
	}

	for _, opt := range opts {
		opt(nav)
	}

	if nav.root.IsZero() {
		return nil, &PathError{
			Op:   "root",
			Path: "",
			Err:  fmt.Errorf("%w: empty root", ErrInvalidArgument),
		}
	}

	entry, exists := store.Lookup(nav.root)
	if !exists {
		return nil, &PathError{Op: "root", Path: nav.root.String(), Err: ErrNotExist}
	}

	if !entry.IsDir() {
		return nil, &PathError{Op: "root", Path: nav.root.String(), Err: ErrNotDir}
	}

	nav.cwd = nav.root

	return nav, nil
}

// Root returns the root directory path.
func (n *Navigator) Root() Path { return n.root }

// Cwd returns the current directory path.
func (n *Navigator) Cwd() Path { return n.cwd }

// DisplayPath returns "~" at the root and the current directory relative to
// the root otherwise.
func (n *Navigator) DisplayPath() string {
	if n.cwd.Equal(n.root) {
		return homeAlias
	}

	return n.cwd.TrimPrefix(n.root).String()
}

// List returns the rendered names of the immediate children of the current
// directory. If name is not empty, the directory it resolves to with the
// rules of [Navigator.ChangeDir] is listed instead; the current directory is
// restored afterwards.
func (n *Navigator) List(name string) ([]string, error) {
	if name != "" {
		saved := n.cwd
		defer func() { n.cwd = saved }()

		if err := n.changeDir(opList, name); err != nil {
			return nil, err
		}
	}

	children := n.store.Children(n.cwd)

	names := make([]string, 0, len(children))
	for _, child := range children {
		names = append(names, child.ListName())
	}

	return names, nil
}

// ChangeDir changes the current directory.
//
// ".." moves to the parent directory and fails at the root. Any other name is
// first resolved relative to the current directory and then relative to the
// root. A root-relative target is reached by walking up to the root and
// descending one directory at a time. "~" and "/" go to the root and a
// leading "/" skips the current-directory lookup.
//
// On error the current directory is unchanged.
func (n *Navigator) ChangeDir(name string) error {
	return n.changeDir(opChangeDir, name)
}

// ChangeOwner reports whether the root-relative path exists. No owner is
// stored, so calling it has no effect on the store.
func (n *Navigator) ChangeOwner(name, owner string) error {
	if owner == "" {
		return &PathError{
			Op:   opChangeOwner,
			Path: name,
			Err:  fmt.Errorf("%w: empty owner", ErrInvalidArgument),
		}
	}

	if _, err := n.lookupQualified(opChangeOwner, name); err != nil {
		return err
	}

	return nil
}

// Reverse returns the lines of the file at the root-relative path with each
// line reversed. See [ReverseLines].
func (n *Navigator) Reverse(name string) ([]string, error) {
	entry, err := n.lookupQualified(opReverse, name)
	if err != nil {
		return nil, err
	}

	if entry.IsDir() {
		return nil, &PathError{Op: opReverse, Path: name, Err: ErrIsDir}
	}

	return ReverseLines(entry.content), nil
}

func (n *Navigator) changeDir(op, name string) error {
	switch name {
	case parentSegment:
		return n.up(op)
	case homeAlias, Separator:
		n.cwd = n.root
		return nil
	}

	rel := ParsePath(name)
	if rel.IsZero() {
		return nil
	}

	if !strings.HasPrefix(name, Separator) {
		if target, ok := n.resolve(n.cwd, rel); ok {
			entry, _ := n.store.Lookup(target)
			if !entry.IsDir() {
				return &PathError{Op: op, Path: name, Err: ErrNotDir}
			}

			n.cwd = target

			return nil
		}
	}

	if target, ok := n.resolve(n.root, rel); ok {
		entry, _ := n.store.Lookup(target)
		if !entry.IsDir() {
			return &PathError{Op: op, Path: name, Err: ErrNotDir}
		}

		return n.walkTo(op, name, target)
	}

	return &PathError{Op: op, Path: name, Err: ErrDirNotFound}
}

// resolve joins rel to base and reports whether the result is an existing
// entry at or below the root.
func (n *Navigator) resolve(base, rel Path) (Path, bool) {
	target, ok := base.Join(rel)
	if !ok || !target.HasPrefix(n.root) {
		return Path{}, false
	}

	if _, exists := n.store.Lookup(target); !exists {
		return Path{}, false
	}

	return target, true
}

func (n *Navigator) up(op string) error {
	if n.cwd.Equal(n.root) {
		return &PathError{Op: op, Path: parentSegment, Err: ErrAtRoot}
	}

	parent, _ := n.cwd.Parent()

	entry, exists := n.store.Lookup(parent)
	if !exists || !entry.IsDir() {
		return &PathError{Op: op, Path: parent.String(), Err: ErrDirNotFound}
	}

	n.cwd = parent

	return nil
}

// walkTo moves to the root by single parent steps and descends to target one
// segment at a time. The current directory is restored if any step fails.
func (n *Navigator) walkTo(op, name string, target Path) error {
	start := n.cwd

	fail := func() error {
		n.cwd = start
		return &PathError{Op: op, Path: name, Err: ErrDirNotFound}
	}

	for !n.cwd.Equal(n.root) {
		if err := n.up(op); err != nil {
			return fail()
		}
	}

	for _, segment := range target.TrimPrefix(n.root).segments {
		next := n.cwd.Child(segment)

		entry, exists := n.store.Lookup(next)
		if !exists || !entry.IsDir() {
			return fail()
		}

		n.cwd = next
	}

	return nil
}

func (n *Navigator) lookupQualified(op, name string) (Entry, error) {
	target, ok := n.resolve(n.root, ParsePath(name))
	if !ok {
		return Entry{}, &PathError{Op: op, Path: name, Err: ErrNotExist}
	}

	entry, _ := n.store.Lookup(target)

	return entry, nil
}
