package game

// Guess is one recorded attempt row: the submitted word and its marks.
type Guess struct {
	Word  string `json:"word"`
	Marks []Mark `json:"feedback"`
}

// Board tracks one player's attempt rows for the current game. A board
// belongs to exactly one player slot and is replaced wholesale when the
// slot changes hands.
type Board struct {
	Guesses []Guess
	Solved  bool
}

func NewBoard() *Board {
	return &Board{Guesses: make([]Guess, 0, MaxGuesses)}
}

// Record appends an attempt row and returns its index. Marks the board
// solved when the row is all green. Callers must check Exhausted first;
// Record does not enforce the row limit itself.
func (b *Board) Record(word string, marks []Mark) int {
	b.Guesses = append(b.Guesses, Guess{Word: word, Marks: marks})
	if AllGreen(marks) {
		b.Solved = true
	}
	return len(b.Guesses) - 1
}

// Exhausted reports whether every attempt row has been used.
func (b *Board) Exhausted() bool {
	return len(b.Guesses) >= MaxGuesses
}

// Done reports solved-or-exhausted, i.e. this player can guess no more.
func (b *Board) Done() bool {
	return b.Solved || b.Exhausted()
}

// Reset clears the rows for a fresh game.
func (b *Board) Reset() {
	b.Guesses = b.Guesses[:0]
	b.Solved = false
}
