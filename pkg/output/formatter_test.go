package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sdejongh/foldercompare/pkg/models"
)

func TestNewWriter(t *testing.T) {
	tests := []struct {
		format  models.OutputFormat
		wantErr bool
	}{
		{models.FormatText, false},
		{models.FormatCSV, false},
		{models.FormatJSON, false},
		{models.OutputFormat("xml"), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			w, err := NewWriter(tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewWriter(%s) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if err == nil && w.Format() != tt.format {
				t.Errorf("Format() = %s, want %s", w.Format(), tt.format)
			}
		})
	}
}

func TestWriteAll(t *testing.T) {
	record := models.NewRecord()
	record.Left = []string{"a.txt"}

	t.Run("WritesEachFormat", func(t *testing.T) {
		in := newInput(t, map[string]string{"a.txt": "X"}, nil, record)
		base := filepath.Join(t.TempDir(), "result")

		written, err := WriteAll(base, in, []models.OutputFormat{models.FormatText, models.FormatCSV, models.FormatJSON})
		if err != nil {
			t.Fatalf("WriteAll() error = %v", err)
		}

		want := []string{base + ".txt", base + ".csv", base + ".json"}
		if len(written) != len(want) {
			t.Fatalf("written = %v, want %v", written, want)
		}
		for i, path := range want {
			if written[i] != path {
				t.Errorf("written[%d] = %s, want %s", i, written[i], path)
			}
			if _, err := os.Stat(path); err != nil {
				t.Errorf("report %s missing: %v", path, err)
			}
		}
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		in := newInput(t, map[string]string{"a.txt": "X"}, nil, record)
		base := filepath.Join(t.TempDir(), "does", "not", "exist", "result")

		written, err := WriteAll(base, in, []models.OutputFormat{models.FormatText, models.FormatCSV})
		if err == nil {
			t.Fatal("WriteAll() should fail when the output directory is missing")
		}
		if models.KindOf(err) != models.KindReportWrite {
			t.Errorf("error kind = %s, want %s", models.KindOf(err), models.KindReportWrite)
		}
		if len(written) != 0 {
			t.Errorf("written = %v, want none", written)
		}
		if _, statErr := os.Stat(filepath.Dir(base)); !os.IsNotExist(statErr) {
			t.Error("writer must not create missing parent directories")
		}
	})

	t.Run("StopsAtFirstFailure", func(t *testing.T) {
		in := newInput(t, map[string]string{"a.txt": "X"}, nil, record)
		dir := t.TempDir()
		base := filepath.Join(dir, "result")
		// a directory squatting on the csv name makes that writer fail
		if err := os.Mkdir(base+".csv", 0755); err != nil {
			t.Fatalf("failed to create blocker: %v", err)
		}

		written, err := WriteAll(base, in, []models.OutputFormat{models.FormatText, models.FormatCSV, models.FormatJSON})
		if models.KindOf(err) != models.KindReportWrite {
			t.Fatalf("error kind = %s, want %s (err: %v)", models.KindOf(err), models.KindReportWrite, err)
		}
		if len(written) != 1 || written[0] != base+".txt" {
			t.Errorf("written = %v, want only the text report", written)
		}
		if _, err := os.Stat(base + ".json"); !os.IsNotExist(err) {
			t.Error("JSON report should not be written after an earlier failure")
		}
	})
}

func TestPrintSummary(t *testing.T) {
	summary := &models.Summary{
		Folder1:  "/one",
		Folder2:  "/two",
		Duration: 1500 * time.Millisecond,
		Stats:    models.Statistics{DirsVisited: 3, LeftOnly: 2, RightOnly: 1, InBoth: 4, Mismatched: 1},
		Outputs:  []string{"/out/report.txt"},
	}

	var buf bytes.Buffer
	PrintSummary(&buf, summary)
	got := buf.String()

	for _, want := range []string{"Compared in 1s", "/one", "/two", "Only in folder 1:  2", "In both folders:   4", "File/dir mismatch: 1", "/out/report.txt"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}
