package vfs

import (
	"slices"
	"strings"
)

// Separator separates path segments in the string form of a [Path].
const Separator = "/"

const parentSegment = ".."

// Path is a normalized path held as its ordered segments. The zero value is
// the empty path, which is the parent of every single segment path.
type Path struct {
	segments []string
}

// ParsePath normalizes name into a [Path]. Leading "./" and "/", trailing
// separators, empty and "." segments are dropped. ".." segments are kept
// verbatim; [Path.Join] resolves them.
func ParsePath(name string) Path {
	var segments []string

	for segment := range strings.SplitSeq(name, Separator) {
		if segment == "" || segment == "." {
			continue
		}

		segments = append(segments, segment)
	}

	return Path{segments: segments}
}

// String returns the slash separated form without trailing separator.
func (p Path) String() string {
	return strings.Join(p.segments, Separator)
}

// IsZero reports whether p is the empty path.
func (p Path) IsZero() bool {
	return len(p.segments) == 0
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// Base returns the last segment or an empty string for the empty path.
func (p Path) Base() string {
	if p.IsZero() {
		return ""
	}

	return p.segments[len(p.segments)-1]
}

// Parent returns the path without its last segment. It returns false for the
// empty path.
func (p Path) Parent() (Path, bool) {
	if p.IsZero() {
		return Path{}, false
	}

	return Path{segments: slices.Clip(p.segments[:len(p.segments)-1])}, true
}

// Child returns the path extended by a single segment.
func (p Path) Child(name string) Path {
	return Path{segments: append(slices.Clip(p.segments), name)}
}

// Join appends rel to p and resolves ".." segments of rel structurally. It
// returns false if rel climbs above the empty path.
func (p Path) Join(rel Path) (Path, bool) {
	segments := slices.Clone(p.segments)

	for _, segment := range rel.segments {
		if segment != parentSegment {
			segments = append(segments, segment)
			continue
		}

		if len(segments) == 0 {
			return Path{}, false
		}

		segments = segments[:len(segments)-1]
	}

	return Path{segments: segments}, true
}

// Equal reports whether both paths have the same segments.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p.segments, other.segments)
}

// HasPrefix reports whether prefix is p itself or one of its ancestors.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix.segments) > len(p.segments) {
		return false
	}

	return slices.Equal(p.segments[:len(prefix.segments)], prefix.segments)
}

// TrimPrefix returns p relative to prefix. p is returned unchanged if prefix
// is not an ancestor of p.
func (p Path) TrimPrefix(prefix Path) Path {
	if !p.HasPrefix(prefix) {
		return p
	}

	return Path{segments: slices.Clone(p.segments[len(prefix.segments):])}
}
