package storage

import (
	"time"
)

// FileInfo represents metadata about a tree entry
type FileInfo struct {
	Name         string
	Size         int64
	ModTime      time.Time
	IsDir        bool
	IsRegular    bool
	RelativePath string
}

// Backend is a read-only view of one compared root.
// Paths are relative to Root; "." is the root itself.
type Backend interface {
	// Root returns the path the backend is rooted at, as printed in reports
	Root() string

	// ReadDir lists the immediate children of a directory.
	// Symbolic links are reported as themselves, never followed.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns metadata for a path, following symbolic links
	Stat(path string) (*FileInfo, error)

	// Close releases any resources held by the backend
	Close() error
}
