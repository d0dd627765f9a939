package board_test

import (
	"testing"

	"github.com/seekerror/gongo/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSuicide_EmptyBoardNeverSuicide(t *testing.T) {
	b := newTestBoard(t)

	for _, name := range []string{"A1", "J9", "E5"} {
		p := pointOf(t, b, name)
		assert.False(t, b.IsSuicide(p, board.Black), name)
	}
}

func TestIsSuperKo_NoHistoryNeverKo(t *testing.T) {
	b := newTestBoard(t)

	e5 := pointOf(t, b, "E5")
	ko, hash := b.IsSuperKo(e5, board.Black)
	assert.False(t, ko)
	assert.NotZero(t, hash)
}

func TestIsSuperKo_HashMatchesAppliedMove(t *testing.T) {
	b := newTestBoard(t)

	e5 := pointOf(t, b, "E5")
	_, predicted := b.IsSuperKo(e5, b.Turn())

	require.NoError(t, b.Push("E5"))
	assert.Equal(t, predicted, b.Hash())
}
