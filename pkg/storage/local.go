package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
)

// Local is a filesystem-based storage backend
type Local struct {
	tree
}

// LocalOption configures a Local backend
type LocalOption func(*Local)

// WithDisplayRoot makes Root report label instead of the directory path.
// Reads still go to the directory.
func WithDisplayRoot(label string) LocalOption {
	return func(l *Local) {
		if label != "" {
			l.root = filepath.Clean(label)
		}
	}
}

// NewLocal creates a backend rooted at an existing directory.
// The root is kept as given (cleaned) so reports print the path the caller supplied.
func NewLocal(rootPath string, opts ...LocalOption) (*Local, error) {
	root := filepath.Clean(rootPath)

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}

	absPath, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	local := &Local{tree: tree{root: root, fs: osfs.New(absPath)}}
	for _, opt := range opts {
		opt(local)
	}
	return local, nil
}
