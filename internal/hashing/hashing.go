// Package hashing identifies positions by Zobrist hash: duplicate
// detection for test suites and repetition counting for games.
package hashing

import (
	"github.com/lgbarn/dokchess-go/internal/engine"
)

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash confirms Hash matches
	WeakHash uint32
	// Tag identifies the first occurrence (a line number, an index)
	Tag int
}

// DuplicateDetector tracks seen positions. It is not safe for concurrent
// use.
type DuplicateDetector struct {
	hashTable      map[uint64][]PositionSignature
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{
		hashTable: make(map[uint64][]PositionSignature),
	}
}

// CheckAndAdd records pos under tag. If pos was seen before it returns the
// tag of the first occurrence and true.
func (d *DuplicateDetector) CheckAndAdd(pos engine.Position, tag int) (int, bool) {
	sig := PositionSignature{
		Hash:     Hash(pos),
		WeakHash: WeakHash(pos),
		Tag:      tag,
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if existing.WeakHash == sig.WeakHash {
			d.duplicateCount++
			return existing.Tag, true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return 0, false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.duplicateCount = 0
}

// History counts how often each position has occurred in a game.
type History struct {
	positionCounts map[uint64]int
	plies          int
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{positionCounts: make(map[uint64]int)}
}

// Push records pos and returns how many times it has now occurred.
func (h *History) Push(pos engine.Position) int {
	key := Hash(pos)
	h.positionCounts[key]++
	h.plies++
	return h.positionCounts[key]
}

// Count returns how many times pos has occurred.
func (h *History) Count(pos engine.Position) int {
	return h.positionCounts[Hash(pos)]
}

// Len returns the number of positions recorded.
func (h *History) Len() int {
	return h.plies
}

// Reset forgets every position.
func (h *History) Reset() {
	h.positionCounts = make(map[uint64]int)
	h.plies = 0
}
