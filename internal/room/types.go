package room

import (
	"encoding/json"

	"github.com/samirrh/word-race/internal/game"
)

// WSMessage is the wire envelope for every message in both directions.
type WSMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Inbound event types. This is the closed set; anything else is dropped.
const (
	EvtRoomJoin  = "room_join"
	EvtGuess     = "guess"
	EvtTyping    = "typing"
	EvtResetRoom = "reset_room"
)

// Outbound event types.
const (
	EvtHello          = "room:hello"
	EvtRoster         = "room:roster"
	EvtOpponentJoined = "room:opponent_joined"
	EvtTypingUpdate   = "typing:update"
	EvtGuessResult    = "guess:result"
	EvtGuessRejected  = "guess:rejected"
	EvtFinished       = "room:finished"
	EvtReset          = "room:reset"
)

// Role of a session within its room. The first two distinct sessions to
// join become players; everyone after that spectates.
type Role string

const (
	RolePlayer    Role = "player"
	RoleSpectator Role = "spectator"
)

// Status of a room's game content.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// --- inbound payloads ---

type joinPayload struct {
	RoomID string `json:"roomId"`
}

type guessPayload struct {
	Guess string `json:"guess"`
}

type typingPayload struct {
	Length int `json:"length"`
}

// --- outbound payloads ---

type helloPayload struct {
	YouArePlayer bool `json:"youArePlayer"`
	MaxGuesses   int  `json:"maxGuesses"`
}

type rosterPayload struct {
	RoomID        string   `json:"roomId"`
	Players       []string `json:"players"`
	NumPlayers    int      `json:"numPlayers"`
	NumSpectators int      `json:"numSpectators"`
}

type opponentJoinedPayload struct {
	SID string `json:"sid"`
}

type typingUpdatePayload struct {
	SID    string `json:"sid"`
	Length int    `json:"length"`
}

type guessResultPayload struct {
	SID       string      `json:"sid"`
	Row       int         `json:"row"`
	Guess     string      `json:"guess"`
	Feedback  []game.Mark `json:"feedback"`
	Solved    bool        `json:"solved"`
	Done      bool        `json:"done"`
	WinnerSID string      `json:"winnerSid,omitempty"`
}

type rejectedPayload struct {
	Reason string `json:"reason"`
}

type finishedPayload struct {
	Solution  string `json:"solution"`
	WinnerSID string `json:"winnerSid,omitempty"`
}

// RoomInfo is the read-only room summary served over HTTP.
type RoomInfo struct {
	RoomID        string   `json:"roomId"`
	Players       []string `json:"players"`
	NumPlayers    int      `json:"numPlayers"`
	NumSpectators int      `json:"numSpectators"`
	Status        Status   `json:"status"`
	WinnerSID     string   `json:"winnerSid,omitempty"`
}
