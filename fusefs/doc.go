// Package fusefs exposes a [vfs.Store] as a read-only FUSE filesystem.
//
// The directory given as root becomes the mount root. Inodes are assigned
// once, in path order, when the filesystem is created.
package fusefs
