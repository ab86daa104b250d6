package storage

import (
	"path/filepath"
	"testing"
)

func TestMemory(t *testing.T) {
	mem := NewMemory("/left")

	if err := mem.WriteFile("a.txt", []byte("X")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := mem.WriteFile(filepath.Join("sub", "f.txt"), []byte("hello")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := mem.MkdirAll("empty"); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	if mem.Root() != "/left" {
		t.Errorf("Root() = %s, want /left", mem.Root())
	}

	entries, err := mem.ReadDir(".")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	want := []struct {
		name  string
		isDir bool
	}{
		{"a.txt", false},
		{"empty", true},
		{"sub", true},
	}
	if len(entries) != len(want) {
		t.Fatalf("ReadDir() returned %d entries, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i].Name != w.name || entries[i].IsDir != w.isDir {
			t.Errorf("entries[%d] = %s (dir=%v), want %s (dir=%v)", i, entries[i].Name, entries[i].IsDir, w.name, w.isDir)
		}
	}

	info, err := mem.Stat(filepath.Join("sub", "f.txt"))
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size != 5 || !info.IsRegular {
		t.Errorf("Stat() = %+v, want regular file of 5 bytes", info)
	}
}
