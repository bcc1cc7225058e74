// Package fsutil provides file system utility functions, including the
// OS-backed data source consumed by the loader.
package fsutil

import (
	"os"
	"sort"
)

// OSSource reads an export directory straight from the operating system's
// file system. Listings are sorted by name so that load results do not
// depend on directory enumeration order.
type OSSource struct{}

// NewOSSource creates an OS-backed source.
func NewOSSource() *OSSource {
	return &OSSource{}
}

// List returns the names of the entries in dir, sorted.
func (s *OSSource) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// ReadFile returns the contents of the file at path.
func (s *OSSource) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// IsDir reports whether path exists and is a directory.
func (s *OSSource) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path exists and is a regular file.
func (s *OSSource) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
