package output

import (
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sdejongh/foldercompare/pkg/models"
	"github.com/sdejongh/foldercompare/pkg/storage"
)

// newInput builds an Input over two in-memory trees seeded with the given files
func newInput(t *testing.T, left, right map[string]string, record *models.Record) *Input {
	t.Helper()

	l := storage.NewMemory("/left")
	r := storage.NewMemory("/right")
	for name, content := range left {
		if err := l.WriteFile(filepath.FromSlash(name), []byte(content)); err != nil {
			t.Fatalf("failed to seed left tree: %v", err)
		}
	}
	for name, content := range right {
		if err := r.WriteFile(filepath.FromSlash(name), []byte(content)); err != nil {
			t.Fatalf("failed to seed right tree: %v", err)
		}
	}

	return &Input{OperationID: "test-op", Left: l, Right: r, Record: record}
}

// entryLine renders one expected report line without going through fmt padding
func entryLine(path, size string) string {
	return "\t" + path + strings.Repeat(" ", 100-len(path)) + "|" + strings.Repeat(" ", 20-len(size)) + size + "\n"
}

func join(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// parseReport parses a CSV report whose records end in a bare \r. Records are
// split on \r outside quoted fields only, so quoted CR and LF survive.
func parseReport(data string) ([][]string, error) {
	var rows [][]string
	inQuotes := false
	start := 0
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '"':
			inQuotes = !inQuotes
		case '\r':
			if inQuotes {
				continue
			}
			row, err := csv.NewReader(strings.NewReader(data[start:i])).Read()
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
			start = i + 1
		}
	}
	if start != len(data) {
		return nil, fmt.Errorf("unterminated record: %q", data[start:])
	}
	return rows, nil
}
