// Package score keeps the process-lifetime top score list and prints it at exit.
package score

import (
	"slices"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
)

// Record is one finished game
type Record struct {
	Score   int
	At      time.Time
	Session string
}

// Board is a bounded list of records ordered by score, highest first
// Equal scores keep insertion order
type Board struct {
	limit   int
	records []Record
}

// NewBoard creates an empty board holding at most limit records
// A non-positive limit uses constants.MaxScoreRecords
func NewBoard(limit int) *Board {
	if limit <= 0 {
		limit = constants.MaxScoreRecords
	}
	return &Board{
		limit:   limit,
		records: make([]Record, 0, limit+1),
	}
}

// Add inserts r, keeps the order and truncates to the limit
// Returns the 1-based rank of r, or 0 if it did not make the list
func (b *Board) Add(r Record) int {
	idx := slices.IndexFunc(b.records, func(existing Record) bool {
		return existing.Score < r.Score
	})
	if idx < 0 {
		idx = len(b.records)
	}

	b.records = slices.Insert(b.records, idx, r)
	if len(b.records) > b.limit {
		b.records = b.records[:b.limit]
	}

	if idx >= b.limit {
		return 0
	}
	return idx + 1
}

// Records returns a copy of the list in rank order
func (b *Board) Records() []Record {
	return slices.Clone(b.records)
}

// Len returns the number of records held
func (b *Board) Len() int {
	return len(b.records)
}

// Limit returns the capacity of the board
func (b *Board) Limit() int {
	return b.limit
}
