package vfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/vshell/vfs"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		segments int
	}{
		{name: "plain", input: "filesystem/C", expected: "filesystem/C", segments: 2},
		{name: "trailing separator", input: "filesystem/C/", expected: "filesystem/C", segments: 2},
		{name: "leading dot", input: "./filesystem/C", expected: "filesystem/C", segments: 2},
		{name: "absolute", input: "/filesystem", expected: "filesystem", segments: 1},
		{name: "double separators", input: "filesystem//C///users", expected: "filesystem/C/users", segments: 3},
		{name: "inner dot", input: "filesystem/./C", expected: "filesystem/C", segments: 2},
		{name: "parent kept", input: "../C", expected: "../C", segments: 2},
		{name: "archive root", input: "./", expected: "", segments: 0},
		{name: "empty", input: "", expected: "", segments: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := vfs.ParsePath(tt.input)
			assert.Equal(t, tt.expected, path.String())
			assert.Equal(t, tt.segments, path.Len())
			assert.Equal(t, tt.segments == 0, path.IsZero())
		})
	}
}

func TestPathParent(t *testing.T) {
	path := vfs.ParsePath("filesystem/D/Documents")

	parent, ok := path.Parent()
	require.True(t, ok)
	assert.Equal(t, "filesystem/D", parent.String())

	top, ok := vfs.ParsePath("filesystem").Parent()
	require.True(t, ok)
	assert.True(t, top.IsZero())

	_, ok = vfs.Path{}.Parent()
	assert.False(t, ok)
}

func TestPathChildDoesNotAlias(t *testing.T) {
	base := vfs.ParsePath("filesystem/C/users")
	parent, _ := base.Parent()

	first := parent.Child("a")
	second := parent.Child("b")

	assert.Equal(t, "filesystem/C/a", first.String())
	assert.Equal(t, "filesystem/C/b", second.String())
	assert.Equal(t, "filesystem/C/users", base.String())
}

func TestPathJoin(t *testing.T) {
	base := vfs.ParsePath("filesystem/D")

	tests := []struct {
		name     string
		rel      string
		expected string
		ok       bool
	}{
		{name: "child", rel: "Documents", expected: "filesystem/D/Documents", ok: true},
		{name: "parent", rel: "..", expected: "filesystem", ok: true},
		{name: "sibling", rel: "../C", expected: "filesystem/C", ok: true},
		{name: "up to empty", rel: "../..", expected: "", ok: true},
		{name: "above empty", rel: "../../..", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			joined, ok := base.Join(vfs.ParsePath(tt.rel))
			assert.Equal(t, tt.ok, ok)

			if tt.ok {
				assert.Equal(t, tt.expected, joined.String())
			}
		})
	}
}

func TestPathPrefix(t *testing.T) {
	d := vfs.ParsePath("filesystem/D")
	documents := vfs.ParsePath("filesystem/Documents")
	nested := vfs.ParsePath("filesystem/D/Documents")

	assert.False(t, documents.HasPrefix(d), "sibling with shared name prefix")
	assert.True(t, nested.HasPrefix(d))
	assert.True(t, d.HasPrefix(d))
	assert.False(t, d.HasPrefix(nested))

	assert.Equal(t, "Documents", nested.TrimPrefix(d).String())
	assert.Equal(t, documents, documents.TrimPrefix(d))
}

func TestPathEqual(t *testing.T) {
	assert.True(t, vfs.ParsePath("a/b").Equal(vfs.ParsePath("./a/b/")))
	assert.False(t, vfs.ParsePath("a/b").Equal(vfs.ParsePath("a/bc")))
	assert.Equal(t, "b", vfs.ParsePath("a/b").Base())
	assert.Empty(t, vfs.Path{}.Base())
}
