package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	require.NoError(t, Init())
	assert.Greater(t, Count(), 100)
}

func TestRandomReturnsAllowedWord(t *testing.T) {
	for i := 0; i < 50; i++ {
		w := Random()
		require.Len(t, w, 5)
		require.True(t, isAlpha(w), "random word %q not lowercase alpha", w)
		require.True(t, IsAllowed(w))
	}
}

func TestIsAllowed(t *testing.T) {
	assert.True(t, IsAllowed("crane"))
	assert.True(t, IsAllowed("CRANE"), "lookup is case-insensitive")
	assert.False(t, IsAllowed("zzzzz"))
	assert.False(t, IsAllowed("cat"))
}

func TestClosest(t *testing.T) {
	w, dist := Closest("crane")
	assert.Equal(t, "crane", w)
	assert.Equal(t, 0, dist)

	_, dist = Closest("crano")
	assert.Equal(t, 1, dist)

	_, dist = Closest("xqzwv")
	assert.Greater(t, dist, 1)
}
