package fusefs

import (
	"context"
	"fmt"
	"os"
	"syscall"
	"time"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"

	"github.com/dendrascience/vshell/vfs"
)

const (
	rootInode = 1

	dirMode  = os.ModeDir | 0o555
	fileMode = 0o444
)

var (
	_ fs.FS                 = (*FS)(nil)
	_ fs.Node               = (*Dir)(nil)
	_ fs.NodeStringLookuper = (*Dir)(nil)
	_ fs.HandleReadDirAller = (*Dir)(nil)
	_ fs.Node               = (*File)(nil)
	_ fs.HandleReadAller    = (*File)(nil)
)

// FS implements a read-only FUSE filesystem over a [vfs.Store].
type FS struct {
	store   *vfs.Store
	root    vfs.Path
	inodes  map[string]uint64
	created time.Time
}

// New creates a filesystem rooted at the directory root of store.
func New(store *vfs.Store, root string) (*FS, error) {
	rootPath := vfs.ParsePath(root)

	entry, exists := store.Lookup(rootPath)
	if !exists {
		return nil, &vfs.PathError{Op: "mount", Path: root, Err: vfs.ErrNotExist}
	}

	if !entry.IsDir() {
		return nil, &vfs.PathError{Op: "mount", Path: root, Err: vfs.ErrNotDir}
	}

	fsys := &FS{
		store:   store,
		root:    rootPath,
		inodes:  map[string]uint64{rootPath.String(): rootInode},
		created: time.Now(),
	}

	next := uint64(rootInode + 1)

	for entry := range store.All() {
		path := entry.Path()
		if path.Equal(rootPath) || !path.HasPrefix(rootPath) {
			continue
		}

		fsys.inodes[path.String()] = next
		next++
	}

	return fsys, nil
}

// Root returns the root directory node.
func (f *FS) Root() (fs.Node, error) {
	return &Dir{fs: f, path: f.root}, nil
}

// Len returns the number of nodes including the root.
func (f *FS) Len() int {
	return len(f.inodes)
}

func (f *FS) inode(path vfs.Path) uint64 {
	return f.inodes[path.String()]
}

func (f *FS) setTimes(a *fuse.Attr) {
	a.Mtime = f.created
	a.Ctime = f.created
	a.Atime = f.created
}

func (f *FS) node(entry vfs.Entry) fs.Node {
	if entry.IsDir() {
		return &Dir{fs: f, path: entry.Path()}
	}

	return &File{fs: f, entry: entry}
}

// Dir is a directory node.
type Dir struct {
	fs   *FS
	path vfs.Path
}

// Attr returns directory attributes.
func (d *Dir) Attr(_ context.Context, a *fuse.Attr) error {
	a.Inode = d.fs.inode(d.path)
	a.Mode = dirMode
	a.Nlink = 2
	d.fs.setTimes(a)

	return nil
}

// Lookup returns the child node with the given name.
func (d *Dir) Lookup(_ context.Context, name string) (fs.Node, error) {
	entry, exists := d.fs.store.Lookup(d.path.Child(name))
	if !exists {
		return nil, syscall.ENOENT
	}

	return d.fs.node(entry), nil
}

// ReadDirAll lists the immediate children.
func (d *Dir) ReadDirAll(_ context.Context) ([]fuse.Dirent, error) {
	children := d.fs.store.Children(d.path)
	dirents := make([]fuse.Dirent, 0, len(children))

	for _, child := range children {
		dirent := fuse.Dirent{
			Inode: d.fs.inode(child.Path()),
			Name:  child.Name(),
			Type:  fuse.DT_File,
		}

		if child.IsDir() {
			dirent.Type = fuse.DT_Dir
		}

		dirents = append(dirents, dirent)
	}

	return dirents, nil
}

// File is a regular file node.
type File struct {
	fs    *FS
	entry vfs.Entry
}

// Attr returns file attributes.
func (f *File) Attr(_ context.Context, a *fuse.Attr) error {
	a.Inode = f.fs.inode(f.entry.Path())
	a.Mode = fileMode
	a.Size = uint64(f.entry.Size())
	a.Nlink = 1
	f.fs.setTimes(a)

	return nil
}

// ReadAll returns a copy of the file content.
func (f *File) ReadAll(_ context.Context) ([]byte, error) {
	return f.entry.Content(), nil
}

// String returns the path of the file.
func (f *File) String() string {
	return fmt.Sprintf("File(%s)", f.entry.Path())
}
