// Package version reports the vshell build version.
//
// The values come from -ldflags when set, for example
//
//	-ldflags "-X github.com/dendrascience/vshell/version.Version=v1.0.0"
//
// and otherwise from the module build info embedded by the Go toolchain.
package version
