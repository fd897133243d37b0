// Package words is the word source for the game: a flat list of valid
// 5-letter words used both to pick targets and to vet guesses.
//
// By default the list is embedded so the server runs with no external
// files. Set WORDS_FILE to load a custom list instead; entries that are
// not 5 lowercase letters are skipped.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"math/rand"
	"os"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
)

//go:embed words.txt
var embedded string

var (
	loadOnce sync.Once
	list     []string
	allowed  map[string]struct{}
	loadErr  error
)

// Init loads the word list exactly once. Safe to call from any
// goroutine; later calls return the first result.
func Init() error {
	loadOnce.Do(func() {
		var lines []string
		if path := os.Getenv("WORDS_FILE"); path != "" {
			lines, loadErr = readWordFile(path)
			if loadErr != nil {
				return
			}
		} else {
			lines = normalizeLines(embedded)
		}
		if len(lines) == 0 {
			loadErr = errors.New("words: list is empty")
			return
		}
		list = lines
		allowed = make(map[string]struct{}, len(lines))
		for _, w := range lines {
			allowed[w] = struct{}{}
		}
	})
	return loadErr
}

func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w, ok := normalize(sc.Text()); ok {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if w, ok := normalize(line); ok {
			out = append(out, w)
		}
	}
	return out
}

func normalize(line string) (string, bool) {
	w := strings.TrimSpace(strings.ToLower(line))
	if len(w) != 5 || !isAlpha(w) {
		return "", false
	}
	return w, true
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Random returns a uniformly chosen word. Falls back to a fixed word if
// the list failed to load, so a room is never created without a target.
func Random() string {
	if err := Init(); err != nil || len(list) == 0 {
		return "crane"
	}
	return list[rand.Intn(len(list))]
}

// IsAllowed reports whether w may be submitted as a guess.
func IsAllowed(w string) bool {
	_ = Init()
	_, ok := allowed[strings.ToLower(w)]
	return ok
}

// Closest returns the nearest allowed word to w by edit distance, used
// to hint at likely typos when a guess is rejected.
func Closest(w string) (string, int) {
	_ = Init()
	best, bestDist := "", -1
	for _, cand := range list {
		d := levenshtein.ComputeDistance(w, cand)
		if bestDist == -1 || d < bestDist {
			best, bestDist = cand, d
			if bestDist == 0 {
				break
			}
		}
	}
	return best, bestDist
}

// Count reports how many words are loaded.
func Count() int {
	_ = Init()
	return len(list)
}
