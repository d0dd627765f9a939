package player

import "github.com/seekerror/gongo/pkg/board"

// Bound represents the bound of a -- possibly inexact -- cached score.
type Bound uint8

const (
	ExactBound Bound = iota
	LowerBound
)

type entry struct {
	bound Bound
	depth int
	score Score
	move  string
}

// TranspositionTable caches search results keyed by Zobrist hash, avoiding
// re-exploring positions reached by a different move order. A plain map:
// AlphaBeta.Search is not called concurrently, so there is nothing to make
// safe for multiple writers.
type TranspositionTable struct {
	m map[board.Hash]entry
}

// NewTranspositionTable returns an empty table.
func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{m: map[board.Hash]entry{}}
}

// Read returns the bound, depth, score and best move cached for hash, if any.
func (t *TranspositionTable) Read(hash board.Hash) (Bound, int, Score, string, bool) {
	e, ok := t.m[hash]
	return e.bound, e.depth, e.score, e.move, ok
}

// Write stores an entry, replacing any previous one for the same hash.
func (t *TranspositionTable) Write(hash board.Hash, bound Bound, depth int, score Score, move string) {
	t.m[hash] = entry{bound: bound, depth: depth, score: score, move: move}
}

// Size returns the number of cached positions.
func (t *TranspositionTable) Size() int {
	return len(t.m)
}
