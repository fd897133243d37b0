package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardRecordAssignsSequentialRows(t *testing.T) {
	b := NewBoard()
	for i := 0; i < MaxGuesses; i++ {
		word := fmt.Sprintf("gues%d", i)
		row := b.Record(word, Score("moist", "query"))
		require.Equal(t, i, row)
	}
	assert.True(t, b.Exhausted())
	assert.True(t, b.Done())
	assert.False(t, b.Solved)
}

func TestBoardSolved(t *testing.T) {
	b := NewBoard()
	b.Record("slate", Score("slate", "crane"))
	assert.False(t, b.Done())

	b.Record("crane", Score("crane", "crane"))
	assert.True(t, b.Solved)
	assert.True(t, b.Done())
	assert.False(t, b.Exhausted())
}

func TestBoardReset(t *testing.T) {
	b := NewBoard()
	b.Record("crane", Score("crane", "crane"))
	b.Reset()
	assert.Empty(t, b.Guesses)
	assert.False(t, b.Solved)
	assert.False(t, b.Done())
}
