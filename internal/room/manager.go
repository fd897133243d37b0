package room

import (
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
)

// Manager is the process-wide registry of live rooms. Rooms come into
// existence on first reference and are dropped again when their last
// session leaves; the id stays usable because the next join simply
// recreates it.
type Manager struct {
	rooms map[string]*Room
	sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{rooms: make(map[string]*Room)}
}

// GetOrCreate returns the room for id, creating it on first reference.
// The double-checked write lock guarantees exactly one room per id even
// when two sessions race the first join.
func (m *Manager) GetOrCreate(id string) *Room {
	m.RLock()
	r, ok := m.rooms[id]
	m.RUnlock()
	if ok {
		return r
	}

	m.Lock()
	defer m.Unlock()
	if r, ok := m.rooms[id]; ok {
		return r
	}
	r = newRoom(id)
	m.rooms[id] = r
	log.Info().Str("room", id).Msg("room created")
	return r
}

// Get looks up an existing room without creating one.
func (m *Manager) Get(id string) (*Room, bool) {
	m.RLock()
	defer m.RUnlock()
	r, ok := m.rooms[id]
	return r, ok
}

// Release detaches a session from its room and removes the room from
// the registry once it is empty. Holding the manager lock across the
// leave keeps removal atomic with respect to GetOrCreate, so a join
// racing the teardown either finds the closed room (and retries) or a
// fresh one.
func (m *Manager) Release(r *Room, s *Session) {
	m.Lock()
	if r.leave(s) {
		delete(m.rooms, r.ID)
		log.Info().Str("room", r.ID).Msg("room removed")
	}
	m.Unlock()
}

// Count reports how many rooms are live.
func (m *Manager) Count() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.rooms)
}

// Infos returns a summary of every live room, sorted by id for stable
// HTTP responses.
func (m *Manager) Infos() []RoomInfo {
	m.RLock()
	rooms := make([]*Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		rooms = append(rooms, r)
	}
	m.RUnlock()

	infos := make([]RoomInfo, 0, len(rooms))
	for _, r := range rooms {
		infos = append(infos, r.Info())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].RoomID < infos[j].RoomID })
	return infos
}
