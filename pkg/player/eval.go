package player

import "github.com/seekerror/gongo/pkg/board"

// Evaluate scores the position from the perspective of the side to move:
// the stone-count difference, own minus opponent. A stand-in for real
// territory/influence evaluation, consistent with board.Board.Result's own
// placeholder stone-count result.
func Evaluate(b *board.Board) Score {
	turn := b.Turn()
	own := Score(b.OnBoard(turn))
	opp := Score(b.OnBoard(turn.Opponent()))
	return own - opp
}
