package models

import (
	"errors"
)

// ErrorKind classifies failures surfaced by a comparison
type ErrorKind string

const (
	// KindInvalidArchive: a zip input could not be opened or extracted
	KindInvalidArchive ErrorKind = "INVALID_ARCHIVE"
	// KindFilesystemAccess: a root is missing, not a directory, or could not be listed
	KindFilesystemAccess ErrorKind = "FILESYSTEM_ACCESS"
	// KindReportWrite: a report file could not be created or written
	KindReportWrite ErrorKind = "REPORT_WRITE"
	// KindInvalidInput: the request itself is malformed
	KindInvalidInput ErrorKind = "INVALID_INPUT"
	// KindUnknown is returned by KindOf for errors without a kind
	KindUnknown ErrorKind = "UNKNOWN"
)

// OperationError carries the kind of a failure and the path it concerns
type OperationError struct {
	Kind ErrorKind
	Path string
	Err  error
}

// NewOperationError wraps err with a kind and path
func NewOperationError(kind ErrorKind, path string, err error) *OperationError {
	return &OperationError{Kind: kind, Path: path, Err: err}
}

func (e *OperationError) Error() string {
	msg := string(e.Kind)
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first OperationError in err's chain.
// Validation errors report KindInvalidInput.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return KindInvalidInput
	}
	return KindUnknown
}
