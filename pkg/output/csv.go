package output

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/sdejongh/foldercompare/pkg/models"
)

// csvLineTerminator is a bare carriage return, as spreadsheet readers expect
const csvLineTerminator = "\r"

// CSVWriter writes the tabular report
type CSVWriter struct{}

// NewCSVWriter creates a new CSV writer
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// Format returns models.FormatCSV
func (w *CSVWriter) Format() models.OutputFormat {
	return models.FormatCSV
}

// Write creates <base>.csv
func (w *CSVWriter) Write(base string, in *Input) (string, error) {
	file, path, err := createReport(base, models.FormatCSV)
	if err != nil {
		return path, err
	}

	buf := bufio.NewWriter(file)
	err = writeCSV(buf, in)
	if err == nil {
		err = buf.Flush()
	}
	return path, finishReport(file, path, err)
}

func writeCSV(w io.Writer, in *Input) error {
	rw := newRecordWriter(w)
	leftRoot, rightRoot := in.Left.Root(), in.Right.Root()

	header := []string{
		fmt.Sprintf(`Files only in folder "%s"`, leftRoot),
		"File size",
		fmt.Sprintf(`Files only in folder "%s"`, rightRoot),
		"File size",
		fmt.Sprintf(`Files in both folders present on "%s"`, leftRoot),
		"File size",
		fmt.Sprintf(`Files in both folders present on "%s"`, rightRoot),
		"File size",
	}
	if err := rw.write(header); err != nil {
		return err
	}

	columns := csvColumns(in)
	rows := 0
	for _, col := range columns {
		if len(col) > rows {
			rows = len(col)
		}
	}

	for i := 0; i < rows; i++ {
		row := make([]string, len(columns))
		for c, col := range columns {
			if i < len(col) {
				row[c] = col[i]
			}
		}
		if err := rw.write(row); err != nil {
			return err
		}
	}

	return nil
}

// csvColumns builds the eight report columns: path and size for each bucket side
func csvColumns(in *Input) [][]string {
	rec := in.Record
	columns := make([][]string, 8)

	for _, rel := range rec.Left {
		columns[0] = append(columns[0], in.LeftPath(rel))
		columns[1] = append(columns[1], ResolveSize(in.Left, rel))
	}
	for _, rel := range rec.Right {
		columns[2] = append(columns[2], in.RightPath(rel))
		columns[3] = append(columns[3], ResolveSize(in.Right, rel))
	}
	for _, p := range rec.Both {
		columns[4] = append(columns[4], in.LeftPath(p.Left))
		columns[5] = append(columns[5], ResolveSize(in.Left, p.Left))
		columns[6] = append(columns[6], in.RightPath(p.Right))
		columns[7] = append(columns[7], ResolveSize(in.Right, p.Right))
	}

	return columns
}

// recordWriter quotes fields with encoding/csv and terminates records with csvLineTerminator
type recordWriter struct {
	out io.Writer
	buf bytes.Buffer
	csv *csv.Writer
}

func newRecordWriter(out io.Writer) *recordWriter {
	rw := &recordWriter{out: out}
	rw.csv = csv.NewWriter(&rw.buf)
	return rw
}

func (rw *recordWriter) write(record []string) error {
	rw.buf.Reset()
	if err := rw.csv.Write(record); err != nil {
		return err
	}
	rw.csv.Flush()
	if err := rw.csv.Error(); err != nil {
		return err
	}

	line := bytes.TrimSuffix(rw.buf.Bytes(), []byte("\n"))
	if _, err := rw.out.Write(line); err != nil {
		return err
	}
	_, err := io.WriteString(rw.out, csvLineTerminator)
	return err
}
