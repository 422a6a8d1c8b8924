// Package cmd provides the command-line interface implementation for vshell.
//
// It uses the Cobra library for command structure and Fang for styling.
// The root command runs the interactive shell; the subcommands are:
//   - mount: serve the archive read-only through FUSE
//   - stat: summarize the entries of an archive
//   - validate: check that every entry has a parent directory
//   - pack: build an archive from a host directory
//   - seed: write a demo archive
//   - version: print version information
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. Configuration is read from
// VSHELL_* environment variables first; flags given on the command line
// take precedence.
package cmd
