package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marks(s string) []Mark {
	out := make([]Mark, 0, len(s))
	for _, r := range s {
		out = append(out, Mark(string(r)))
	}
	return out
}

func TestScore(t *testing.T) {
	cases := []struct {
		name   string
		guess  string
		target string
		want   string
	}{
		{"exact match", "crane", "crane", "ggggg"},
		{"no letters shared", "moist", "query", "bbbbb"},
		{"double letter not over-credited", "llama", "allot", "ygybb"},
		{"repeated guess letter", "eeeee", "geese", "bggbg"},
		{"green takes priority over yellow", "babes", "abbey", "yyggb"},
		{"single transposition", "caste", "crane", "gybbg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, marks(tc.want), Score(tc.guess, tc.target))
		})
	}
}

// For every letter, greens plus yellows must equal the smaller of its
// counts in guess and target; that is the contract that makes repeated
// letters behave.
func TestScoreCreditInvariant(t *testing.T) {
	pairs := [][2]string{
		{"llama", "allot"},
		{"eeeee", "geese"},
		{"geese", "eeeee"},
		{"banal", "canal"},
		{"otter", "rotor"},
		{"crane", "crane"},
	}
	for _, p := range pairs {
		guess, target := p[0], p[1]
		res := Score(guess, target)
		for ch := byte('a'); ch <= 'z'; ch++ {
			credited := 0
			for i := 0; i < WordLen; i++ {
				if guess[i] == ch && res[i] != MarkGray {
					credited++
				}
			}
			want := min(strings.Count(guess, string(ch)), strings.Count(target, string(ch)))
			require.Equal(t, want, credited,
				"letter %q in guess %q vs target %q", string(ch), guess, target)
		}
	}
}

func TestAllGreen(t *testing.T) {
	assert.True(t, AllGreen(Score("crane", "crane")))
	assert.False(t, AllGreen(Score("caste", "crane")))
}

func TestIsLowerAlpha(t *testing.T) {
	assert.True(t, IsLowerAlpha("crane"))
	assert.False(t, IsLowerAlpha("Crane"))
	assert.False(t, IsLowerAlpha("cran3"))
	assert.False(t, IsLowerAlpha("cr an"))
}
