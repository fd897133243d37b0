package room

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateRaceMakesOneRoom(t *testing.T) {
	mgr := NewManager()

	const n = 32
	results := make([]*Room, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = mgr.GetOrCreate("shared")
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Same(t, results[0], r)
	}
	assert.Equal(t, 1, mgr.Count())
}

func TestReleaseRemovesEmptyRoom(t *testing.T) {
	mgr := NewManager()
	r := mgr.GetOrCreate("solo")
	s := newTestSession()
	require.True(t, r.admit(s))

	mgr.Release(r, s)

	_, ok := mgr.Get("solo")
	assert.False(t, ok)
	assert.Equal(t, 0, mgr.Count())

	// A stale pointer to the dropped room bounces new admissions; the
	// next lookup builds a fresh room under the same id.
	assert.False(t, r.admit(newTestSession()))
	fresh := mgr.GetOrCreate("solo")
	assert.NotSame(t, r, fresh)
}

func TestReleaseKeepsOccupiedRoom(t *testing.T) {
	mgr := NewManager()
	r := mgr.GetOrCreate("busy")
	s1, s2 := newTestSession(), newTestSession()
	r.admit(s1)
	r.admit(s2)

	mgr.Release(r, s1)

	got, ok := mgr.Get("busy")
	require.True(t, ok)
	assert.Same(t, r, got)
	assert.Equal(t, 1, got.Info().NumPlayers)
}

func TestHandleJoinLifecycle(t *testing.T) {
	mgr := NewManager()
	s := newTestSession()

	s.handleJoin(mgr, "alpha")
	require.NotNil(t, s.room)
	assert.Equal(t, "alpha", s.room.ID)
	assert.Equal(t, RolePlayer, s.Role)
	require.Len(t, ofType(drain(t, s), EvtHello), 1)

	// Re-joining the same room only replays the hello.
	s.handleJoin(mgr, "alpha")
	msgs := drain(t, s)
	require.Len(t, ofType(msgs, EvtHello), 1)
	assert.Equal(t, 1, mgr.Count())

	// Joining another room moves the session and empties the old room
	// out of the registry.
	s.handleJoin(mgr, "beta")
	assert.Equal(t, "beta", s.room.ID)
	_, ok := mgr.Get("alpha")
	assert.False(t, ok)
	assert.Equal(t, 1, mgr.Count())
}

func TestInfos(t *testing.T) {
	mgr := NewManager()
	a := mgr.GetOrCreate("a")
	b := mgr.GetOrCreate("b")
	a.admit(newTestSession())
	b.admit(newTestSession())
	b.admit(newTestSession())
	b.admit(newTestSession())

	infos := mgr.Infos()
	require.Len(t, infos, 2)
	assert.Equal(t, "a", infos[0].RoomID)
	assert.Equal(t, 1, infos[0].NumPlayers)
	assert.Equal(t, "b", infos[1].RoomID)
	assert.Equal(t, 2, infos[1].NumPlayers)
	assert.Equal(t, 1, infos[1].NumSpectators)
	assert.Equal(t, StatusActive, infos[0].Status)
}
