package models

import "sort"

// Pair holds the two relative paths of an entry present under both roots
type Pair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Record is the classification produced by a tree comparison
type Record struct {
	// Left holds relative paths present only under the first root
	Left []string

	// Right holds relative paths present only under the second root
	Right []string

	// Both holds files present under both roots at the same relative position
	Both []Pair

	// Mismatched holds names that are a file on one side and a directory on the other.
	// They are never part of Left, Right or Both.
	Mismatched []Pair
}

// NewRecord returns an empty record
func NewRecord() *Record {
	return &Record{
		Left:       []string{},
		Right:      []string{},
		Both:       []Pair{},
		Mismatched: []Pair{},
	}
}

// Merge appends the entries of other to r
func (r *Record) Merge(other *Record) {
	if other == nil {
		return
	}
	r.Left = append(r.Left, other.Left...)
	r.Right = append(r.Right, other.Right...)
	r.Both = append(r.Both, other.Both...)
	r.Mismatched = append(r.Mismatched, other.Mismatched...)
}

// Sort orders every list lexicographically by its primary path
func (r *Record) Sort() {
	sort.Strings(r.Left)
	sort.Strings(r.Right)
	sortPairs(r.Both)
	sortPairs(r.Mismatched)
}

// Swap returns the record seen from the other side: left and right trade places
func (r *Record) Swap() *Record {
	swapped := &Record{
		Left:       append([]string{}, r.Right...),
		Right:      append([]string{}, r.Left...),
		Both:       make([]Pair, 0, len(r.Both)),
		Mismatched: make([]Pair, 0, len(r.Mismatched)),
	}
	for _, p := range r.Both {
		swapped.Both = append(swapped.Both, Pair{Left: p.Right, Right: p.Left})
	}
	for _, p := range r.Mismatched {
		swapped.Mismatched = append(swapped.Mismatched, Pair{Left: p.Right, Right: p.Left})
	}
	swapped.Sort()
	return swapped
}

func sortPairs(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Left != pairs[j].Left {
			return pairs[i].Left < pairs[j].Left
		}
		return pairs[i].Right < pairs[j].Right
	})
}
