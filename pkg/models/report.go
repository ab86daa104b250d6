package models

import (
	"time"
)

// Summary describes a finished comparison
type Summary struct {
	OperationID string
	Folder1     string // input as supplied (directory or archive)
	Folder2     string

	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	Stats Statistics

	// Outputs lists the report files written, in write order
	Outputs []string

	Record *Record
}

// Statistics holds comparison counters
type Statistics struct {
	DirsVisited int // directory pairs walked, including the roots
	LeftOnly    int
	RightOnly   int
	InBoth      int
	Mismatched  int
}

// Tally fills the entry counters from a record
func (s *Statistics) Tally(r *Record) {
	s.LeftOnly = len(r.Left)
	s.RightOnly = len(r.Right)
	s.InBoth = len(r.Both)
	s.Mismatched = len(r.Mismatched)
}
