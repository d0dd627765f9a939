// Package player is a minimal demonstration consumer of board.Board's
// public contract: LegalMoves, Push, Pop, IsGameOver, Turn and Result. It
// plays no part of the board engine itself -- search and evaluation are
// explicitly out of scope for that layer -- and exists only to exercise
// the push/pop-for-search-backtracking shape the board engine offers.
package player

import (
	"context"

	"github.com/seekerror/gongo/pkg/board"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// AlphaBeta is a negamax alpha-beta player using Evaluate as its leaf
// heuristic and stone-count (board.Board.Result) as its terminal-node
// heuristic. See: https://en.wikipedia.org/wiki/Negamax.
type AlphaBeta struct {
	Depth int
	TT    *TranspositionTable // nil disables caching
}

// PV is a principal variation: the best line found and its score, from the
// perspective of the side to move at the root.
type PV struct {
	Score Score
	Moves []string
}

// Search returns the best line found from b's current position, to the
// given depth. b is restored to its original state before returning: every
// Push is matched by a Pop.
func (p AlphaBeta) Search(ctx context.Context, b *board.Board) (uint64, PV) {
	tt := p.TT
	if tt == nil {
		tt = NewTranspositionTable()
	}

	run := &runAlphaBeta{b: b, tt: tt}
	score, moves := run.search(ctx, p.Depth, NegInf, Inf)
	return run.nodes, PV{Score: score, Moves: moves}
}

type runAlphaBeta struct {
	b     *board.Board
	tt    *TranspositionTable
	nodes uint64
}

func (m *runAlphaBeta) search(ctx context.Context, depth int, alpha, beta Score) (Score, []string) {
	if contextx.IsCancelled(ctx) {
		return 0, nil
	}
	if m.b.IsGameOver() {
		return m.terminalScore(), nil
	}

	var best string
	if bound, d, score, move, ok := m.tt.Read(m.b.Hash()); ok {
		best = move
		if d == depth && bound == ExactBound {
			return score, nil // cutoff
		}
	}

	if depth == 0 {
		m.nodes++
		score := Evaluate(m.b)
		m.tt.Write(m.b.Hash(), ExactBound, depth, score, "")
		return score, nil
	}

	legal := m.b.LegalMoves()
	ml := NewMoveList(legal, func(move string) Priority {
		if move == best {
			return 1
		}
		return 0
	})

	bound := ExactBound
	var pv []string
	for {
		move, ok := ml.Next()
		if !ok {
			break
		}

		if err := m.b.Push(move); err != nil {
			continue // unreachable: LegalMoves only returns parseable names
		}
		m.nodes++

		score, rem := m.search(ctx, depth-1, beta.Negate(), alpha.Negate())
		score = score.Negate()

		m.b.Pop()

		if alpha.Less(score) {
			alpha = score
			pv = append([]string{move}, rem...)
		}
		if !alpha.Less(beta) {
			bound = LowerBound
			break // beta cutoff
		}
	}

	if bound == ExactBound {
		m.tt.Write(m.b.Hash(), bound, depth, alpha, firstOrEmpty(pv))
	}
	return alpha, pv
}

func firstOrEmpty(pv []string) string {
	if len(pv) == 0 {
		return ""
	}
	return pv[0]
}

// terminalScore scores a finished game from the side-to-move's perspective,
// using the placeholder stone-count Result.
func (m *runAlphaBeta) terminalScore() Score {
	switch m.b.Result() {
	case "1-0": // White ahead on stones
		if m.b.Turn() == board.White {
			return MaxScore
		}
		return MinScore
	case "0-1": // Black ahead on stones
		if m.b.Turn() == board.Black {
			return MaxScore
		}
		return MinScore
	default:
		return 0
	}
}
