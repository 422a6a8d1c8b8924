// Package vfs implements the in-memory virtual filesystem behind vshell.
//
// A [Store] maps normalized paths to immutable entries. Paths are held as
// segment sequences ([Path]) so every parent/child decision is made by
// structural comparison instead of string prefixes: "filesystem/D" is never
// confused with "filesystem/Documents".
//
// A [Navigator] owns a Store plus the current directory and provides the
// operations the shell dispatches to:
//   - List: immediate children of the current or a given directory
//   - ChangeDir: "..", cwd-relative and root-relative navigation
//   - Reverse: per-line reversal of a file's text content
//   - ChangeOwner: ownership change that is only reported, never stored
//
// The Store is built once and never mutated afterwards, so no locking is
// needed anywhere in this package.
package vfs
