package archive

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dendrascience/vshell/vfs"
)

// Metadata summarizes the entries of a store.
type Metadata struct {
	Entries     int    `json:"entries"`
	Files       int    `json:"files"`
	Directories int    `json:"directories"`
	TotalSize   int64  `json:"total_size"`
	LargestFile string `json:"largest_file,omitempty"`
	LargestSize int64  `json:"largest_size"`
}

// Summarize counts the entries of the store. If pattern is not empty, only
// entries whose full path matches the doublestar glob pattern are counted.
func Summarize(store *vfs.Store, pattern string) (Metadata, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return Metadata{}, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}

	var m Metadata

	for entry := range store.All() {
		if pattern != "" {
			matched, err := doublestar.Match(pattern, entry.Path().String())
			if err != nil {
				return Metadata{}, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
			}

			if !matched {
				continue
			}
		}

		m.Entries++

		if entry.IsDir() {
			m.Directories++
			continue
		}

		m.Files++
		m.TotalSize += entry.Size()

		if entry.Size() > m.LargestSize || m.LargestFile == "" {
			m.LargestFile = entry.Path().String()
			m.LargestSize = entry.Size()
		}
	}

	return m, nil
}
