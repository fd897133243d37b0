package game

// Mark is the per-letter outcome of comparing a guess to the target word.
// The wire letters match the client: "g" green (right letter, right spot),
// "y" yellow (right letter, wrong spot), "b" blank (letter not in the word).
type Mark string

const (
	MarkGreen  Mark = "g"
	MarkYellow Mark = "y"
	MarkGray   Mark = "b"
)

// Protocol constants. Fixed, not negotiated.
const (
	WordLen    = 5
	MaxGuesses = 6
)

// Score evaluates guess against target with the standard two-pass
// algorithm, so repeated letters are never credited beyond their count
// in the target.
//
// Pass 1 marks exact positions green and counts the remaining target
// letters. Pass 2 resolves the rest: yellow while a count remains for
// that letter, gray otherwise.
//
// Both inputs must be WordLen lowercase a-z letters; callers validate
// before scoring.
func Score(guess, target string) []Mark {
	res := make([]Mark, WordLen)

	var counts [26]int
	for i := 0; i < WordLen; i++ {
		if guess[i] == target[i] {
			res[i] = MarkGreen
		} else {
			counts[target[i]-'a']++
		}
	}

	for i := 0; i < WordLen; i++ {
		if res[i] == MarkGreen {
			continue
		}
		j := int(guess[i] - 'a')
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkYellow
			counts[j]--
		} else {
			res[i] = MarkGray
		}
	}
	return res
}

// AllGreen reports whether every mark is green, i.e. a winning guess.
func AllGreen(marks []Mark) bool {
	for _, m := range marks {
		if m != MarkGreen {
			return false
		}
	}
	return true
}

// IsLowerAlpha reports whether s consists only of lowercase a-z letters.
func IsLowerAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
