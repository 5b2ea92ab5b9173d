// Package hashing provides position hashing for repetition counting and
// duplicate game detection.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

const numSquares = chess.BoardSize * chess.BoardSize

var (
	zobristPieces      [2][chess.NumKinds][numSquares]uint64
	zobristTwoStepped  [numSquares]uint64
	zobristBlackToMove uint64
)

func init() {
	// splitmix64 with a fixed seed, so hashes are stable across runs.
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for colour := range zobristPieces {
		for kind := range zobristPieces[colour] {
			for sq := range zobristPieces[colour][kind] {
				zobristPieces[colour][kind][sq] = next()
			}
		}
	}
	for sq := range zobristTwoStepped {
		zobristTwoStepped[sq] = next()
	}
	zobristBlackToMove = next()
}

// GenerateZobristHash hashes the placement of every piece, the pawns open
// to en passant capture and the side to move.
func GenerateZobristHash(pos *chess.Position, toMove chess.Colour) uint64 {
	var hash uint64
	for _, pc := range pos.Pieces() {
		if !pc.Square.OnBoard() {
			continue
		}
		idx := squareIndex(pc.Square)
		hash ^= zobristPieces[pc.Colour][pc.Kind][idx]
		if pc.TwoStepped {
			hash ^= zobristTwoStepped[idx]
		}
	}
	if toMove == chess.Black {
		hash ^= zobristBlackToMove
	}
	return hash
}

// WeakHash is a cheap checksum of the occupied squares and their piece
// kinds, used as a second opinion when Zobrist hashes collide.
func WeakHash(pos *chess.Position) uint32 {
	var hash uint32
	for _, pc := range pos.Pieces() {
		if !pc.Square.OnBoard() {
			continue
		}
		value := uint32(pc.Kind) + 8*uint32(pc.Colour)
		hash += value * uint32(squareIndex(pc.Square)+1)
	}
	return hash
}

func squareIndex(sq chess.Square) int {
	return sq.Row*chess.BoardSize + sq.Col
}

// RepetitionTable counts how often each position has occurred in a game.
type RepetitionTable struct {
	counts map[uint64]int
	peak   int
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Record notes one more occurrence of the position and returns how often it
// has now been seen.
func (r *RepetitionTable) Record(hash uint64) int {
	r.counts[hash]++
	n := r.counts[hash]
	if n > r.peak {
		r.peak = n
	}
	return n
}

// Count returns how often the position has been recorded.
func (r *RepetitionTable) Count(hash uint64) int {
	return r.counts[hash]
}

// Peak returns the highest count of any recorded position.
func (r *RepetitionTable) Peak() int {
	return r.peak
}

// Reset forgets every recorded position.
func (r *RepetitionTable) Reset() {
	r.counts = make(map[uint64]int)
	r.peak = 0
}

// GameSignature identifies a finished game by its final position.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// Plies is the number of committed moves
	Plies int
	// Weak is a fast hash for a second comparison
	Weak uint32
}

// NewGameSignature builds the signature of a game ending in pos.
func NewGameSignature(pos *chess.Position, toMove chess.Colour, plies int) GameSignature {
	return GameSignature{
		Hash:  GenerateZobristHash(pos, toMove),
		Plies: plies,
		Weak:  WeakHash(pos),
	}
}

// DuplicateDetector tracks the final positions of games already seen.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same number of plies
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
	}
}

// CheckAndAdd reports whether a game with the same signature was already
// seen, and remembers it otherwise.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if d.signaturesMatch(sig, existingSig) {
				d.duplicateCount++
				return true
			}
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.Weak != b.Weak {
		return false
	}
	if d.useExactMatch && a.Plies != b.Plies {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
}
