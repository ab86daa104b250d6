// Package archive turns zip inputs into temporary directories that can be compared
// like any other folder.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/uuid"

	"github.com/sdejongh/foldercompare/pkg/models"
)

// DirPrefix prefixes every extraction directory
const DirPrefix = "foldercompare-"

var zipSignatures = [][]byte{
	[]byte("PK\x03\x04"), // local file header
	[]byte("PK\x05\x06"), // end of central directory (empty archive)
}

// Workspace is a compared root: either the input directory itself or an
// extraction directory owned by the workspace
type Workspace struct {
	// Source is the path supplied by the caller
	Source string

	// Root is the directory to compare
	Root string

	extracted bool
}

// Extracted reports whether Root is a temporary extraction directory
func (w *Workspace) Extracted() bool {
	return w.extracted
}

// Release removes the extraction directory. Directory inputs are left alone.
// Removal is best effort: the returned error is informational.
func (w *Workspace) Release() error {
	if w == nil || !w.extracted {
		return nil
	}
	if err := os.RemoveAll(w.Root); err != nil {
		return fmt.Errorf("failed to remove extraction directory: %w", err)
	}
	return nil
}

// IsZip reports whether path should be handled as a zip archive: anything that is
// not a directory and either carries a .zip extension or starts with a zip signature
func IsZip(path string) bool {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return false
	}
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return true
	}
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	header := make([]byte, 4)
	if _, err := io.ReadFull(file, header); err != nil {
		return false
	}
	for _, sig := range zipSignatures {
		if bytes.Equal(header, sig) {
			return true
		}
	}
	return false
}

// Acquire prepares path for comparison. Zip archives are extracted into a uniquely
// named directory beside the archive; the caller must Release the workspace on
// every exit path.
func Acquire(path string) (*Workspace, error) {
	if !IsZip(path) {
		return &Workspace{Source: path, Root: path}, nil
	}

	reader, err := zip.OpenReader(path)
	if err != nil {
		if reader != nil {
			reader.Close()
		}
		return nil, models.NewOperationError(models.KindInvalidArchive, path, err)
	}
	defer reader.Close()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, models.NewOperationError(models.KindInvalidArchive, path, err)
	}

	root := filepath.Join(filepath.Dir(absPath), DirPrefix+uuid.NewString())
	if err := os.Mkdir(root, 0755); err != nil {
		return nil, models.NewOperationError(models.KindInvalidArchive, path,
			fmt.Errorf("failed to create extraction directory: %w", err))
	}

	ws := &Workspace{Source: path, Root: root, extracted: true}
	if err := extract(&reader.Reader, osfs.New(root)); err != nil {
		_ = ws.Release()
		return nil, models.NewOperationError(models.KindInvalidArchive, path, err)
	}

	return ws, nil
}

// extract writes every archive member into dst
func extract(r *zip.Reader, dst billy.Filesystem) error {
	for _, f := range r.File {
		name, err := memberPath(f.Name)
		if err != nil {
			return err
		}
		if name == "" {
			continue
		}

		if f.FileInfo().IsDir() {
			if err := dst.MkdirAll(name, 0755); err != nil {
				return fmt.Errorf("failed to create %s: %w", name, err)
			}
			continue
		}

		if err := extractFile(f, dst, name); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(f *zip.File, dst billy.Filesystem, name string) error {
	if dir := filepath.Dir(name); dir != "." {
		if err := dst.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open member %s: %w", f.Name, err)
	}
	defer src.Close()

	perm := f.Mode().Perm()
	if perm == 0 {
		perm = 0644
	}
	out, err := dst.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}

	_, copyErr := io.Copy(out, src)
	closeErr := out.Close()
	if copyErr != nil {
		return fmt.Errorf("failed to extract %s: %w", f.Name, copyErr)
	}
	return closeErr
}

var errUnsafeMember = errors.New("archive member escapes the extraction directory")

// memberPath converts a zip member name into a relative OS path, rejecting
// names that climb out of the extraction directory
func memberPath(name string) (string, error) {
	slashed := strings.ReplaceAll(name, `\`, "/")
	for _, part := range strings.Split(slashed, "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: %s", errUnsafeMember, name)
		}
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+slashed), "/")
	return filepath.FromSlash(cleaned), nil
}
