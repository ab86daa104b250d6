package output

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/sdejongh/foldercompare/pkg/models"
)

func csvRecord() *models.Record {
	record := models.NewRecord()
	record.Left = []string{"a.txt", "b.txt", "c.txt"}
	record.Right = []string{"r.txt"}
	record.Both = []models.Pair{{Left: "both.txt", Right: "both.txt"}}
	return record
}

func TestWriteCSV_Layout(t *testing.T) {
	in := newInput(t,
		map[string]string{"a.txt": "", "b.txt": "bb", "c.txt": "ccc", "both.txt": strings.Repeat("x", 1024)},
		map[string]string{"r.txt": "r", "both.txt": "y"},
		csvRecord())

	var buf bytes.Buffer
	if err := writeCSV(&buf, in); err != nil {
		t.Fatalf("writeCSV() error = %v", err)
	}
	got := buf.String()

	if strings.Contains(got, "\n") {
		t.Errorf("CSV must use bare carriage returns, got %q", got)
	}

	want := `"Files only in folder ""/left""",File size,"Files only in folder ""/right""",File size,` +
		`"Files in both folders present on ""/left""",File size,"Files in both folders present on ""/right""",File size` + "\r" +
		join("/left", "a.txt") + ",0.00 bytes," + join("/right", "r.txt") + ",1.00 bytes," +
		join("/left", "both.txt") + ",1.00 KB," + join("/right", "both.txt") + ",1.00 bytes\r" +
		join("/left", "b.txt") + ",2.00 bytes,,,,,,\r" +
		join("/left", "c.txt") + ",3.00 bytes,,,,,,\r"

	if got != want {
		t.Errorf("CSV mismatch\ngot:  %q\nwant: %q", got, want)
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	record := csvRecord()
	record.Left = append(record.Left, `odd, "quoted" name.txt`, "line\nbreak.txt", "carriage\rreturn.txt")
	in := newInput(t, nil, nil, record)

	var buf bytes.Buffer
	if err := writeCSV(&buf, in); err != nil {
		t.Fatalf("writeCSV() error = %v", err)
	}

	rows, err := parseReport(buf.String())
	if err != nil {
		t.Fatalf("parseReport() error = %v", err)
	}

	if len(rows) != 1+len(record.Left) {
		t.Fatalf("got %d rows, want %d", len(rows), 1+len(record.Left))
	}

	column := func(idx int) []string {
		var values []string
		for _, row := range rows[1:] {
			if len(row) != 8 {
				t.Fatalf("row has %d fields, want 8: %q", len(row), row)
			}
			if row[idx] != "" {
				values = append(values, row[idx])
			}
		}
		return values
	}

	var wantLeft, wantRight, wantBoth1, wantBoth2 []string
	for _, p := range record.Left {
		wantLeft = append(wantLeft, in.LeftPath(p))
	}
	for _, p := range record.Right {
		wantRight = append(wantRight, in.RightPath(p))
	}
	for _, p := range record.Both {
		wantBoth1 = append(wantBoth1, in.LeftPath(p.Left))
		wantBoth2 = append(wantBoth2, in.RightPath(p.Right))
	}

	if got := column(0); !reflect.DeepEqual(got, wantLeft) {
		t.Errorf("left column = %q, want %q", got, wantLeft)
	}
	if got := column(2); !reflect.DeepEqual(got, wantRight) {
		t.Errorf("right column = %q, want %q", got, wantRight)
	}
	if got := column(4); !reflect.DeepEqual(got, wantBoth1) {
		t.Errorf("both-left column = %q, want %q", got, wantBoth1)
	}
	if got := column(6); !reflect.DeepEqual(got, wantBoth2) {
		t.Errorf("both-right column = %q, want %q", got, wantBoth2)
	}
}

func TestWriteCSV_EmptyRecordWritesHeaderOnly(t *testing.T) {
	in := newInput(t, nil, nil, models.NewRecord())

	var buf bytes.Buffer
	if err := writeCSV(&buf, in); err != nil {
		t.Fatalf("writeCSV() error = %v", err)
	}

	if strings.Count(buf.String(), "\r") != 1 {
		t.Errorf("expected a single header row, got %q", buf.String())
	}
}
