package player_test

import (
	"testing"

	"github.com/seekerror/gongo/pkg/board"
	"github.com/seekerror/gongo/pkg/player"
	"github.com/stretchr/testify/assert"
)

func TestTranspositionTable_ReadWrite(t *testing.T) {
	tt := player.NewTranspositionTable()
	assert.Equal(t, 0, tt.Size())

	var a board.Hash = 0xdeadbeef

	_, _, _, _, ok := tt.Read(a)
	assert.False(t, ok)

	tt.Write(a, player.ExactBound, 3, player.Score(7), "E5")
	assert.Equal(t, 1, tt.Size())

	bound, depth, score, move, ok := tt.Read(a)
	assert.True(t, ok)
	assert.Equal(t, player.ExactBound, bound)
	assert.Equal(t, 3, depth)
	assert.Equal(t, player.Score(7), score)
	assert.Equal(t, "E5", move)

	_, _, _, _, ok = tt.Read(a ^ 0xff)
	assert.False(t, ok)
}

func TestTranspositionTable_WriteReplaces(t *testing.T) {
	tt := player.NewTranspositionTable()
	var a board.Hash = 1

	tt.Write(a, player.ExactBound, 2, player.Score(1), "A1")
	tt.Write(a, player.LowerBound, 4, player.Score(5), "B2")
	assert.Equal(t, 1, tt.Size())

	bound, depth, score, move, ok := tt.Read(a)
	assert.True(t, ok)
	assert.Equal(t, player.LowerBound, bound)
	assert.Equal(t, 4, depth)
	assert.Equal(t, player.Score(5), score)
	assert.Equal(t, "B2", move)
}
