// Package hashing fingerprints positions and detects replays that end in
// the same position.
package hashing

import (
	"github.com/lgbarn/chess-board-go/internal/chess"
)

// DuplicateDetector tracks seen final positions.
// It is not safe for concurrent use.
type DuplicateDetector struct {
	// hashTable stores seen hash codes
	hashTable map[uint64][]Signature
	// useExactMatch also requires the same number of moves played
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// Signature identifies one position that was added to the detector.
type Signature struct {
	Name      string // Caller's label, e.g. a script file name
	Hash      uint64 // Zobrist hash of the position
	WeakHash  uint32
	MoveCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]Signature),
		useExactMatch: exactMatch,
	}
}

// CheckAndAdd records pos under name. If an equal position was already
// recorded it returns that earlier signature and true, and pos is not added.
func (d *DuplicateDetector) CheckAndAdd(name string, pos *chess.Position) (Signature, bool) {
	if pos == nil {
		return Signature{}, false
	}

	sig := Signature{
		Name:      name,
		Hash:      GenerateZobristHash(pos),
		WeakHash:  WeakHash(&pos.Board),
		MoveCount: pos.MoveCount,
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing, true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return Signature{}, false
}

// signaturesMatch checks if two signatures describe the same position.
func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.MoveCount != b.MoveCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.duplicateCount = 0
}
