package models

import (
	"time"
)

// OutputFormat identifies a report rendering
type OutputFormat string

const (
	// FormatText is the fixed-layout plain-text report (.txt)
	FormatText OutputFormat = "text"
	// FormatCSV is the spreadsheet-compatible report (.csv)
	FormatCSV OutputFormat = "csv"
	// FormatJSON is the machine-readable report (.json)
	FormatJSON OutputFormat = "json"
)

// Extension returns the file extension used for the format, including the dot
func (f OutputFormat) Extension() string {
	switch f {
	case FormatText:
		return ".txt"
	case FormatCSV:
		return ".csv"
	case FormatJSON:
		return ".json"
	default:
		return ""
	}
}

// Valid reports whether the format is known
func (f OutputFormat) Valid() bool {
	return f.Extension() != ""
}

// Operation describes one comparison request
type Operation struct {
	ID         string
	Folder1    string // directory or zip archive
	Folder2    string // directory or zip archive
	OutputBase string // report path without extension
	Formats    []OutputFormat
	Ignore     []string
	CreatedAt  time.Time
}

// Validate checks if the operation is complete
func (op *Operation) Validate() error {
	if op.Folder1 == "" {
		return &ValidationError{Field: "Folder1", Message: "first folder is required"}
	}
	if op.Folder2 == "" {
		return &ValidationError{Field: "Folder2", Message: "second folder is required"}
	}
	if len(op.Formats) > 0 && op.OutputBase == "" {
		return &ValidationError{Field: "OutputBase", Message: "output path is required when a report is requested"}
	}
	seen := make(map[OutputFormat]bool)
	for _, f := range op.Formats {
		if !f.Valid() {
			return &ValidationError{Field: "Formats", Message: "unknown output format: " + string(f)}
		}
		if seen[f] {
			return &ValidationError{Field: "Formats", Message: "duplicate output format: " + string(f)}
		}
		seen[f] = true
	}
	return nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
