package room

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 54 * time.Second
)

// Session is one websocket connection. The id is server-assigned and
// opaque to the client; it is the identity everything else keys on.
// Role is assigned by the room on admission and stays fixed while the
// session remains a member.
type Session struct {
	ID     string
	Role   Role
	conn   *websocket.Conn
	send   chan []byte
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once

	// room is only touched from the read pump goroutine.
	room *Room
}

func NewSession(c *websocket.Conn) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		ID:     uuid.NewString(),
		Role:   RoleSpectator,
		conn:   c,
		send:   make(chan []byte, 256),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Session) cleanup() {
	s.once.Do(func() {
		s.cancel()
		if s.conn != nil {
			s.conn.Close()
		}
	})
}

// enqueue hands a message to the write pump. A slow or dead client must
// never block the room, so a full buffer drops the message.
func (s *Session) enqueue(msg []byte) {
	if msg == nil {
		return
	}
	select {
	case <-s.ctx.Done():
	case s.send <- msg:
	default:
		log.Warn().Str("sid", s.ID).Msg("send buffer full, dropping message")
	}
}

// ReadPump reads and dispatches inbound events until the connection
// drops. The four event kinds below are the whole inbound protocol;
// malformed or unknown messages are logged and ignored so one bad
// client can't disturb the room.
func (s *Session) ReadPump(mgr *Manager) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Str("sid", s.ID).Interface("panic", rec).Msg("read pump panic")
		}
		s.cleanup()
		if r := s.room; r != nil {
			mgr.Release(r, s)
		}
		log.Debug().Str("sid", s.ID).Msg("read pump exiting")
	}()

	for {
		select {
		case <-s.ctx.Done():
			return
		default:
		}

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			log.Debug().Err(err).Str("sid", s.ID).Msg("connection closed")
			return
		}

		var wsMsg WSMessage
		if err := json.Unmarshal(msg, &wsMsg); err != nil {
			log.Warn().Err(err).Str("sid", s.ID).Msg("invalid message envelope")
			continue
		}

		switch wsMsg.Type {
		case EvtRoomJoin:
			var p joinPayload
			if err := json.Unmarshal(wsMsg.Data, &p); err != nil {
				log.Warn().Err(err).Str("sid", s.ID).Msg("invalid join payload")
				continue
			}
			s.handleJoin(mgr, strings.TrimSpace(p.RoomID))

		case EvtGuess:
			var p guessPayload
			if err := json.Unmarshal(wsMsg.Data, &p); err != nil {
				log.Warn().Err(err).Str("sid", s.ID).Msg("invalid guess payload")
				continue
			}
			if s.room == nil {
				continue
			}
			s.room.handleGuess(s, p.Guess)

		case EvtTyping:
			var p typingPayload
			if err := json.Unmarshal(wsMsg.Data, &p); err != nil {
				continue
			}
			if s.room == nil {
				continue
			}
			s.room.handleTyping(s, p.Length)

		case EvtResetRoom:
			if s.room == nil {
				continue
			}
			s.room.handleReset(s)

		default:
			log.Debug().Str("sid", s.ID).Str("type", wsMsg.Type).Msg("unknown event dropped")
		}
	}
}

// handleJoin attaches the session to a room, creating it on first
// reference. Re-joining the current room just replays the hello, so the
// event is idempotent per connection; joining a different room moves
// the session there.
func (s *Session) handleJoin(mgr *Manager, roomID string) {
	if roomID == "" {
		roomID = "lobby"
	}
	if cur := s.room; cur != nil {
		if cur.ID == roomID {
			cur.resendHello(s)
			return
		}
		mgr.Release(cur, s)
		s.room = nil
	}
	for {
		r := mgr.GetOrCreate(roomID)
		if r.admit(s) {
			s.room = r
			return
		}
		// Lost a race with the room emptying out; the next lookup
		// recreates it.
	}
}

// WritePump drains the send buffer to the wire and keeps the connection
// alive with pings. Runs on the connection handler goroutine.
func (s *Session) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.cleanup()
	}()

	for {
		select {
		case <-s.ctx.Done():
			return

		case msg := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Debug().Err(err).Str("sid", s.ID).Msg("write error")
				return
			}

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
