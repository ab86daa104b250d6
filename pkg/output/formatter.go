package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sdejongh/foldercompare/pkg/models"
	"github.com/sdejongh/foldercompare/pkg/storage"
)

// Input is everything a report writer needs
type Input struct {
	OperationID string
	Left        storage.Backend
	Right       storage.Backend
	Record      *models.Record
}

// LeftPath joins a left relative path with the left root
func (in *Input) LeftPath(rel string) string {
	return filepath.Join(in.Left.Root(), rel)
}

// RightPath joins a right relative path with the right root
func (in *Input) RightPath(rel string) string {
	return filepath.Join(in.Right.Root(), rel)
}

// Writer renders a record to a report file
type Writer interface {
	// Format returns the format the writer produces
	Format() models.OutputFormat

	// Write creates <base><ext>, overwriting it, and returns the path written
	Write(base string, in *Input) (string, error)
}

// NewWriter returns the writer for a format
func NewWriter(format models.OutputFormat) (Writer, error) {
	switch format {
	case models.FormatText:
		return NewTextWriter(), nil
	case models.FormatCSV:
		return NewCSVWriter(), nil
	case models.FormatJSON:
		return NewJSONWriter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (use: text, csv, json)", format)
	}
}

// WriteAll runs the writers for the given formats in order and stops at the first failure.
// It returns the paths written so far.
func WriteAll(base string, in *Input, formats []models.OutputFormat) ([]string, error) {
	var written []string
	for _, format := range formats {
		w, err := NewWriter(format)
		if err != nil {
			return written, models.NewOperationError(models.KindInvalidInput, "", err)
		}
		path, err := w.Write(base, in)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// createReport opens the report file. Parent directories are never created.
func createReport(base string, format models.OutputFormat) (*os.File, string, error) {
	path := base + format.Extension()
	file, err := os.Create(path)
	if err != nil {
		return nil, path, models.NewOperationError(models.KindReportWrite, path, err)
	}
	return file, path, nil
}

// finishReport closes the file and reports the first of the write and close errors
func finishReport(file *os.File, path string, writeErr error) error {
	closeErr := file.Close()
	if writeErr != nil {
		return models.NewOperationError(models.KindReportWrite, path, writeErr)
	}
	if closeErr != nil {
		return models.NewOperationError(models.KindReportWrite, path, closeErr)
	}
	return nil
}
