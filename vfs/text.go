package vfs

import (
	"slices"
	"strings"
)

// ReverseString reverses s rune by rune.
func ReverseString(s string) string {
	runes := []rune(s)
	slices.Reverse(runes)

	return string(runes)
}

// ReverseLines decodes content as text and reverses every line on its own,
// keeping the line order. A single trailing newline does not produce an
// empty last line and carriage returns of CRLF line endings are dropped.
func ReverseLines(content []byte) []string {
	text := strings.TrimSuffix(string(content), "\n")
	lines := strings.Split(text, "\n")

	for idx, line := range lines {
		lines[idx] = ReverseString(strings.TrimSuffix(line, "\r"))
	}

	return lines
}
