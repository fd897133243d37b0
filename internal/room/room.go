package room

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/samirrh/word-race/internal/game"
	"github.com/samirrh/word-race/internal/words"
)

// Room is the single authority for one game: the target word, the two
// player slots, every connected session, and the guess history. All
// mutations take Mu, so simultaneous guesses from the two players apply
// as a strict sequence and broadcasts go out in that same order.
type Room struct {
	ID string

	Mu       sync.RWMutex
	sessions map[string]*Session // every connected member, keyed by session id
	players  [2]*playerSlot      // nil slot = vacant, claimable by the next joiner
	target   string
	status   Status
	winner   string // session id of the winner, "" while none
	closed   bool   // set once the manager drops the room; admissions bounce
}

// playerSlot binds a player's session id to their attempt board. The
// board leaves with the player; a later claimant starts fresh.
type playerSlot struct {
	sid   string
	board *game.Board
}

func newRoom(id string) *Room {
	return &Room{
		ID:       id,
		sessions: make(map[string]*Session),
		target:   words.Random(),
		status:   StatusActive,
	}
}

// envelope marshals an outbound event. Failures can only come from our
// own payload types, so they are logged and the message dropped.
func envelope(event string, data any) []byte {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("marshal payload")
		return nil
	}
	msg, err := json.Marshal(WSMessage{Type: event, Data: payload})
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("marshal envelope")
		return nil
	}
	return msg
}

func (r *Room) broadcastLocked(event string, data any) {
	msg := envelope(event, data)
	for _, m := range r.sessions {
		m.enqueue(msg)
	}
}

func (r *Room) broadcastExceptLocked(skip *Session, event string, data any) {
	msg := envelope(event, data)
	for _, m := range r.sessions {
		if m == skip {
			continue
		}
		m.enqueue(msg)
	}
}

func (r *Room) slotOfLocked(sid string) *playerSlot {
	for _, p := range r.players {
		if p != nil && p.sid == sid {
			return p
		}
	}
	return nil
}

func (r *Room) playerCountLocked() int {
	n := 0
	for _, p := range r.players {
		if p != nil {
			n++
		}
	}
	return n
}

func (r *Room) rosterLocked() rosterPayload {
	sids := make([]string, 0, 2)
	for _, p := range r.players {
		if p != nil {
			sids = append(sids, p.sid)
		}
	}
	return rosterPayload{
		RoomID:        r.ID,
		Players:       sids,
		NumPlayers:    len(sids),
		NumSpectators: len(r.sessions) - len(sids),
	}
}

// admit adds a session to the room: the first two distinct sessions
// take the player slots, everyone else spectates. Sends the joiner its
// hello, re-broadcasts the roster to the whole room, and announces the
// opponent's arrival when the second player slot fills. Returns false
// if the room has already been dropped by the manager.
func (r *Room) admit(s *Session) bool {
	r.Mu.Lock()
	if r.closed {
		r.Mu.Unlock()
		return false
	}

	r.sessions[s.ID] = s

	wasSolo := r.playerCountLocked() == 1
	role := RoleSpectator
	if r.slotOfLocked(s.ID) != nil {
		role = RolePlayer
	} else {
		for i := range r.players {
			if r.players[i] == nil {
				r.players[i] = &playerSlot{sid: s.ID, board: game.NewBoard()}
				role = RolePlayer
				break
			}
		}
	}
	s.Role = role

	s.enqueue(envelope(EvtHello, helloPayload{
		YouArePlayer: role == RolePlayer,
		MaxGuesses:   game.MaxGuesses,
	}))
	r.broadcastLocked(EvtRoster, r.rosterLocked())
	if role == RolePlayer && wasSolo && r.playerCountLocked() == 2 {
		r.broadcastExceptLocked(s, EvtOpponentJoined, opponentJoinedPayload{SID: s.ID})
	}
	r.Mu.Unlock()

	log.Info().Str("room", r.ID).Str("sid", s.ID).Str("role", string(role)).Msg("session joined")
	return true
}

// resendHello replays the joiner-only messages for an idempotent
// re-join of the same room.
func (r *Room) resendHello(s *Session) {
	r.Mu.RLock()
	s.enqueue(envelope(EvtHello, helloPayload{
		YouArePlayer: s.Role == RolePlayer,
		MaxGuesses:   game.MaxGuesses,
	}))
	s.enqueue(envelope(EvtRoster, r.rosterLocked()))
	r.Mu.RUnlock()
}

// leave removes the session from the roster. A departing player's slot
// goes vacant and is first-come claimable; the game itself keeps its
// status. Reports whether the room is now empty so the manager can drop
// it; an empty room is marked closed and broadcasts nothing.
func (r *Room) leave(s *Session) (empty bool) {
	r.Mu.Lock()
	if _, ok := r.sessions[s.ID]; !ok {
		r.Mu.Unlock()
		return false
	}
	delete(r.sessions, s.ID)
	for i := range r.players {
		if r.players[i] != nil && r.players[i].sid == s.ID {
			r.players[i] = nil
		}
	}
	if len(r.sessions) == 0 {
		r.closed = true
		r.Mu.Unlock()
		log.Info().Str("room", r.ID).Str("sid", s.ID).Msg("last session left")
		return true
	}
	r.broadcastLocked(EvtRoster, r.rosterLocked())
	r.Mu.Unlock()

	log.Info().Str("room", r.ID).Str("sid", s.ID).Msg("session left")
	return false
}

// handleGuess validates and applies one guess. Rejections go privately
// to the sender and leave the room untouched; a recorded guess is
// broadcast to everyone, with the letters blanked in the copy sent to
// the guesser's opponent.
func (r *Room) handleGuess(s *Session, raw string) {
	word := strings.ToLower(strings.TrimSpace(raw))

	r.Mu.Lock()
	slot := r.slotOfLocked(s.ID)

	var rejection error
	switch {
	case slot == nil:
		rejection = ErrNotPlayer
	case r.status == StatusFinished:
		rejection = ErrGameFinished
	case len(word) != game.WordLen || !game.IsLowerAlpha(word):
		rejection = ErrBadLength
	case slot.board.Exhausted():
		rejection = ErrNoAttemptsLeft
	case !words.IsAllowed(word):
		rejection = ErrNotInWordList
	}
	if rejection != nil {
		r.Mu.Unlock()
		s.enqueue(envelope(EvtGuessRejected, rejectedPayload{Reason: rejectReason(rejection, word)}))
		log.Debug().Str("room", r.ID).Str("sid", s.ID).Str("reason", rejection.Error()).Msg("guess rejected")
		return
	}

	marks := game.Score(word, r.target)
	row := slot.board.Record(word, marks)

	finished := false
	if slot.board.Solved {
		r.status = StatusFinished
		r.winner = s.ID
		finished = true
	} else if slot.board.Exhausted() && r.othersExhaustedLocked(slot) {
		// Both boards spent with no winner: a draw. A vacant opposing
		// slot counts as spent, so a lone player running out of rows
		// also ends the game.
		r.status = StatusFinished
		finished = true
	}

	result := guessResultPayload{
		SID:       s.ID,
		Row:       row,
		Guess:     word,
		Feedback:  marks,
		Solved:    slot.board.Solved,
		Done:      slot.board.Done(),
		WinnerSID: r.winner,
	}
	masked := result
	masked.Guess = "" // the opponent sees colors, never letters

	opponentSID := r.opponentSIDLocked(s.ID)
	full := envelope(EvtGuessResult, result)
	hidden := envelope(EvtGuessResult, masked)
	for _, m := range r.sessions {
		if m.ID == opponentSID {
			m.enqueue(hidden)
		} else {
			m.enqueue(full)
		}
	}
	if finished {
		r.broadcastLocked(EvtFinished, finishedPayload{Solution: r.target, WinnerSID: r.winner})
	}
	r.Mu.Unlock()

	log.Info().Str("room", r.ID).Str("sid", s.ID).Int("row", row).
		Bool("solved", result.Solved).Bool("finished", finished).Msg("guess applied")
}

// rejectReason renders the private rejection text, adding a typo hint
// when the word is one edit away from a real one.
func rejectReason(err error, word string) string {
	reason := err.Error()
	if errors.Is(err, ErrNotInWordList) {
		if _, dist := words.Closest(word); dist == 1 {
			reason += " (check your spelling)"
		}
	}
	return reason
}

func (r *Room) opponentSIDLocked(sid string) string {
	for _, p := range r.players {
		if p != nil && p.sid != sid {
			return p.sid
		}
	}
	return ""
}

func (r *Room) othersExhaustedLocked(me *playerSlot) bool {
	for _, p := range r.players {
		if p != nil && p != me && !p.board.Done() {
			return false
		}
	}
	return true
}

// handleTyping relays a player's current input length to everyone else
// in the room. Nothing is stored and the letters never travel. Updates
// from spectators are ignored; they have no board to type into.
func (r *Room) handleTyping(s *Session, length int) {
	r.Mu.RLock()
	if r.slotOfLocked(s.ID) == nil {
		r.Mu.RUnlock()
		return
	}
	msg := envelope(EvtTypingUpdate, typingUpdatePayload{SID: s.ID, Length: length})
	for _, m := range r.sessions {
		if m == s {
			continue
		}
		m.enqueue(msg)
	}
	r.Mu.RUnlock()
}

// handleReset starts a fresh game: new target, cleared boards, status
// back to active. Membership and roles are untouched. Any connected
// session may trigger it, spectators included; that scope is a known,
// deliberate choice.
func (r *Room) handleReset(s *Session) {
	r.Mu.Lock()
	if _, ok := r.sessions[s.ID]; !ok {
		r.Mu.Unlock()
		return
	}
	r.target = words.Random()
	r.status = StatusActive
	r.winner = ""
	for _, p := range r.players {
		if p != nil {
			p.board.Reset()
		}
	}
	r.broadcastLocked(EvtReset, struct{}{})
	r.Mu.Unlock()

	log.Info().Str("room", r.ID).Str("sid", s.ID).Msg("room reset")
}

// Info returns a read-only summary for the HTTP endpoints. The target
// word is deliberately absent.
func (r *Room) Info() RoomInfo {
	r.Mu.RLock()
	defer r.Mu.RUnlock()
	roster := r.rosterLocked()
	return RoomInfo{
		RoomID:        r.ID,
		Players:       roster.Players,
		NumPlayers:    roster.NumPlayers,
		NumSpectators: roster.NumSpectators,
		Status:        r.status,
		WinnerSID:     r.winner,
	}
}
