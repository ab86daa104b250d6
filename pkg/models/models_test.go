package models

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// ============== Record Tests ==============

func TestNewRecord(t *testing.T) {
	r := NewRecord()

	if r.Left == nil || r.Right == nil || r.Both == nil || r.Mismatched == nil {
		t.Error("NewRecord should return non-nil empty lists")
	}
	if len(r.Left)+len(r.Right)+len(r.Both)+len(r.Mismatched) != 0 {
		t.Error("new record should be empty")
	}
}

func TestRecordMerge(t *testing.T) {
	parent := &Record{
		Left: []string{"a"},
		Both: []Pair{{Left: "x", Right: "x"}},
	}
	child := &Record{
		Left:       []string{"sub/b"},
		Right:      []string{"sub/c"},
		Both:       []Pair{{Left: "sub/y", Right: "sub/y"}},
		Mismatched: []Pair{{Left: "sub/m", Right: "sub/m"}},
	}

	parent.Merge(child)
	parent.Merge(nil)

	if want := []string{"a", "sub/b"}; !reflect.DeepEqual(parent.Left, want) {
		t.Errorf("Left = %v, want %v", parent.Left, want)
	}
	if want := []string{"sub/c"}; !reflect.DeepEqual(parent.Right, want) {
		t.Errorf("Right = %v, want %v", parent.Right, want)
	}
	if len(parent.Both) != 2 || len(parent.Mismatched) != 1 {
		t.Errorf("Merge should concatenate, got %+v", parent)
	}
}

func TestRecordSort(t *testing.T) {
	r := &Record{
		Left:  []string{"z", "a/b", "a", "B"},
		Right: []string{"b", "a"},
		Both: []Pair{
			{Left: "m", Right: "m2"},
			{Left: "c", Right: "c"},
			{Left: "m", Right: "m1"},
		},
	}
	r.Sort()

	if want := []string{"B", "a", "a/b", "z"}; !reflect.DeepEqual(r.Left, want) {
		t.Errorf("Left = %v, want %v", r.Left, want)
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(r.Right, want) {
		t.Errorf("Right = %v, want %v", r.Right, want)
	}
	want := []Pair{{Left: "c", Right: "c"}, {Left: "m", Right: "m1"}, {Left: "m", Right: "m2"}}
	if !reflect.DeepEqual(r.Both, want) {
		t.Errorf("Both = %v, want %v", r.Both, want)
	}
}

func TestRecordSwap(t *testing.T) {
	r := &Record{
		Left:       []string{"only1"},
		Right:      []string{"b", "a"},
		Both:       []Pair{{Left: "f", Right: "g"}},
		Mismatched: []Pair{{Left: "d", Right: "e"}},
	}

	s := r.Swap()

	if want := []string{"a", "b"}; !reflect.DeepEqual(s.Left, want) {
		t.Errorf("Left = %v, want %v", s.Left, want)
	}
	if want := []string{"only1"}; !reflect.DeepEqual(s.Right, want) {
		t.Errorf("Right = %v, want %v", s.Right, want)
	}
	if want := []Pair{{Left: "g", Right: "f"}}; !reflect.DeepEqual(s.Both, want) {
		t.Errorf("Both = %v, want %v", s.Both, want)
	}
	if want := []Pair{{Left: "e", Right: "d"}}; !reflect.DeepEqual(s.Mismatched, want) {
		t.Errorf("Mismatched = %v, want %v", s.Mismatched, want)
	}
	if r.Right[0] != "b" {
		t.Error("Swap must not modify the receiver")
	}
}

// ============== Operation Tests ==============

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		format OutputFormat
		ext    string
		valid  bool
	}{
		{FormatText, ".txt", true},
		{FormatCSV, ".csv", true},
		{FormatJSON, ".json", true},
		{OutputFormat("pdf"), "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.Extension(); got != tt.ext {
				t.Errorf("Extension() = %q, want %q", got, tt.ext)
			}
			if got := tt.format.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestOperationValidate(t *testing.T) {
	tests := []struct {
		name  string
		op    Operation
		field string
	}{
		{"complete", Operation{Folder1: "a", Folder2: "b", OutputBase: "r", Formats: []OutputFormat{FormatText, FormatCSV}}, ""},
		{"no reports", Operation{Folder1: "a", Folder2: "b"}, ""},
		{"missing folder1", Operation{Folder2: "b"}, "Folder1"},
		{"missing folder2", Operation{Folder1: "a"}, "Folder2"},
		{"missing output", Operation{Folder1: "a", Folder2: "b", Formats: []OutputFormat{FormatText}}, "OutputBase"},
		{"unknown format", Operation{Folder1: "a", Folder2: "b", OutputBase: "r", Formats: []OutputFormat{"xml"}}, "Formats"},
		{"duplicate format", Operation{Folder1: "a", Folder2: "b", OutputBase: "r", Formats: []OutputFormat{FormatCSV, FormatCSV}}, "Formats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}

			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("Validate() error = %v, want ValidationError", err)
			}
			if valErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", valErr.Field, tt.field)
			}
		})
	}
}

// ============== Error Tests ==============

func TestOperationError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewOperationError(KindFilesystemAccess, "/data/left", cause)

	if got, want := err.Error(), "FILESYSTEM_ACCESS /data/left: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("OperationError should unwrap to its cause")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, ""},
		{"direct", NewOperationError(KindReportWrite, "r.txt", nil), KindReportWrite},
		{"wrapped", fmt.Errorf("run: %w", NewOperationError(KindInvalidArchive, "a.zip", errors.New("bad"))), KindInvalidArchive},
		{"validation", fmt.Errorf("run: %w", &ValidationError{Field: "Folder1", Message: "required"}), KindInvalidInput},
		{"plain", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ============== Summary Tests ==============

func TestStatisticsTally(t *testing.T) {
	r := &Record{
		Left:       []string{"a", "b"},
		Right:      []string{"c"},
		Both:       []Pair{{Left: "d", Right: "d"}, {Left: "e", Right: "e"}, {Left: "f", Right: "f"}},
		Mismatched: []Pair{{Left: "g", Right: "g"}},
	}

	var s Statistics
	s.DirsVisited = 4
	s.Tally(r)

	want := Statistics{DirsVisited: 4, LeftOnly: 2, RightOnly: 1, InBoth: 3, Mismatched: 1}
	if s != want {
		t.Errorf("Tally() = %+v, want %+v", s, want)
	}
}
