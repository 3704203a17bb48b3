// Package leaderboard keeps the process-wide high score table.
//
// Scores live in memory only; a restart clears the table. Ranking is by
// score descending, and entries with equal scores keep the order they
// were submitted in, so an early submission is never displaced by a
// later tie.
package leaderboard

import (
	"sort"
	"sync"
)

// Entry is one submitted score. Entries are immutable once accepted.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Board is a concurrency-safe score table. The zero value is not usable;
// create boards with New.
type Board struct {
	mu         sync.Mutex
	entries    []Entry
	maxEntries int
}

// New creates an empty board. maxEntries bounds how many entries survive
// each submission, lowest ranks dropped first; zero keeps everything.
func New(maxEntries int) *Board {
	return &Board{maxEntries: maxEntries}
}

// Submit records a score. Every submission is accepted, zero scores
// included; there is no identity check, so the same name can appear any
// number of times.
func (b *Board) Submit(name string, score int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, Entry{Name: name, Score: score})
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})

	if b.maxEntries > 0 && len(b.entries) > b.maxEntries {
		b.entries = b.entries[:b.maxEntries]
	}
}

// Top returns up to n entries in rank order. n <= 0 or n beyond the
// table size returns everything. The result is a copy; callers can hold
// onto it across later submissions.
func (b *Board) Top(n int) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n <= 0 || n > len(b.entries) {
		n = len(b.entries)
	}
	top := make([]Entry, n)
	copy(top, b.entries[:n])
	return top
}

// Len returns the number of retained entries.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
