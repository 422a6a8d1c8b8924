// Package archive loads a virtual filesystem [vfs.Store] from an archive
// file and writes archives that can be loaded again.
//
// Supported formats are tar, cpio (SVR4 "newc") and zip. Tar and cpio
// streams may be compressed with gzip or zstd. The format and compression
// are detected from the first bytes of the stream unless given explicitly
// with [WithFormat].
//
// Only regular files and directories become entries. Symbolic links, hard
// links, devices and other member types are skipped.
package archive
