// Package main provides the vshell command-line interface.
//
// vshell loads a filesystem archive (tar, cpio or zip, optionally gzip or
// zstd compressed) into memory and runs a small interactive shell on it.
// The shell understands ls, cd, uptime, rev, chown and exit. Nothing is
// ever written back to the archive.
//
// Besides the shell the binary supports these subcommands:
//   - mount: serve the archive read-only through FUSE
//   - stat: summarize the entries of an archive
//   - validate: check an archive for unreachable entries
//   - pack: build an archive from a host directory
//   - seed: write a demo archive
//   - version: print version information
package main
