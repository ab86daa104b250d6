package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// Memory is an in-memory backend, used to build trees without touching disk
type Memory struct {
	tree
}

// NewMemory creates an empty in-memory tree reported under root
func NewMemory(root string) *Memory {
	return &Memory{tree: tree{root: filepath.Clean(root), fs: memfs.New()}}
}

// WriteFile creates a file (and its parents) with the given content
func (m *Memory) WriteFile(path string, data []byte) error {
	if err := util.WriteFile(m.fs, cleanRel(path), data, 0644); err != nil {
		return fmt.Errorf("storage: write %q: %w", path, err)
	}
	return nil
}

// MkdirAll creates a directory and all necessary parents
func (m *Memory) MkdirAll(path string) error {
	if err := m.fs.MkdirAll(cleanRel(path), os.ModeDir|0755); err != nil {
		return fmt.Errorf("storage: mkdir %q: %w", path, err)
	}
	return nil
}
