package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
)

// tree adapts a billy filesystem to Backend
type tree struct {
	root string
	fs   billy.Filesystem
}

func (t *tree) Root() string {
	return t.root
}

func (t *tree) ReadDir(path string) ([]FileInfo, error) {
	entries, err := t.fs.ReadDir(cleanRel(path))
	if err != nil {
		return nil, fmt.Errorf("storage: readdir %q: %w", path, err)
	}

	infos := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, toFileInfo(filepath.Join(cleanRel(path), e.Name()), e))
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })

	return infos, nil
}

func (t *tree) Stat(path string) (*FileInfo, error) {
	info, err := t.fs.Stat(cleanRel(path))
	if err != nil {
		return nil, fmt.Errorf("storage: stat %q: %w", path, err)
	}
	fi := toFileInfo(cleanRel(path), info)
	return &fi, nil
}

func (t *tree) Close() error {
	return nil
}

func toFileInfo(rel string, info os.FileInfo) FileInfo {
	return FileInfo{
		Name:         info.Name(),
		Size:         info.Size(),
		ModTime:      info.ModTime(),
		IsDir:        info.IsDir(),
		IsRegular:    info.Mode().IsRegular(),
		RelativePath: rel,
	}
}

func cleanRel(path string) string {
	if path == "" {
		return "."
	}
	return filepath.Clean(path)
}
