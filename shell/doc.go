// Package shell runs the interactive command loop over a [vfs.Navigator].
//
// Each input line is split on whitespace; the first field selects the
// command. Errors of a command are printed as a single line and the loop
// continues. The loop ends on "exit" or at the end of the input.
package shell
