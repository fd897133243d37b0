package room

import "errors"

// Guess rejection reasons. The message text is exactly what the
// offending session receives in guess:rejected; nothing here is ever
// broadcast or fatal to the room.
var (
	ErrNotPlayer      = errors.New("spectators can't guess")
	ErrGameFinished   = errors.New("game is finished")
	ErrBadLength      = errors.New("guess must be 5 letters")
	ErrNoAttemptsLeft = errors.New("no attempts left")
	ErrNotInWordList  = errors.New("not in word list")
)
