package game

import (
	"testing"

	"gomokusimul/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireIndexConsistent verifies the reverse index against the
// authoritative room membership: every index entry must point at a room
// the participant actually belongs to, and every member must be
// indexed.
func requireIndexConsistent(t *testing.T, d *Directory) {
	t.Helper()
	d.mu.RLock()
	defer d.mu.RUnlock()

	for pid, roomID := range d.participantRoom {
		room, ok := d.rooms[roomID]
		require.True(t, ok, "index entry %s points at missing room %s", pid, roomID)
		member := room.IsHost(pid)
		for _, c := range room.Challengers() {
			if c.ID == pid {
				member = true
			}
		}
		require.True(t, member, "indexed participant %s is not in room %s", pid, roomID)
	}

	for roomID, room := range d.rooms {
		require.Equal(t, roomID, d.participantRoom[room.Host().ID])
		for _, c := range room.Challengers() {
			require.Equal(t, roomID, d.participantRoom[c.ID])
		}
	}
}

func TestCreateRoomIndexesHost(t *testing.T) {
	d := NewDirectory()
	room := d.CreateRoom("my room", hostOf("h"))

	require.NotNil(t, room)
	assert.Len(t, room.ID(), 8)

	got, ok := d.GetRoom(room.ID())
	require.True(t, ok)
	assert.Same(t, room, got)

	byHost, ok := d.GetRoomByParticipant("h")
	require.True(t, ok)
	assert.Same(t, room, byHost)

	requireIndexConsistent(t, d)
}

func TestJoinRoom(t *testing.T) {
	d := NewDirectory()
	room := d.CreateRoom("my room", hostOf("h"))

	joined, ok := d.JoinRoom(room.ID(), challengerOf("a"))
	require.True(t, ok)
	assert.Same(t, room, joined)

	byPlayer, ok := d.GetRoomByParticipant("a")
	require.True(t, ok)
	assert.Same(t, room, byPlayer)

	_, ok = d.JoinRoom("missing", challengerOf("b"))
	assert.False(t, ok)

	_, ok = d.JoinRoom(room.ID(), challengerOf("a"))
	assert.False(t, ok, "duplicate join refused and not indexed twice")

	requireIndexConsistent(t, d)
}

func TestJoinRoomAfterStartRefused(t *testing.T) {
	d := NewDirectory()
	room := d.CreateRoom("my room", hostOf("h"))
	_, ok := d.JoinRoom(room.ID(), challengerOf("a"))
	require.True(t, ok)
	require.True(t, room.StartGame())

	_, ok = d.JoinRoom(room.ID(), challengerOf("late"))
	assert.False(t, ok)
	_, ok = d.GetRoomByParticipant("late")
	assert.False(t, ok)

	requireIndexConsistent(t, d)
}

func TestHostLeaveCascades(t *testing.T) {
	d := NewDirectory()
	room := d.CreateRoom("my room", hostOf("h"))
	for _, id := range []string{"a", "b", "c"} {
		_, ok := d.JoinRoom(room.ID(), challengerOf(id))
		require.True(t, ok)
	}

	left, ok := d.LeaveRoom("h")
	require.True(t, ok)
	assert.Same(t, room, left, "deleted room still returned for notification")

	_, ok = d.GetRoom(room.ID())
	assert.False(t, ok)
	for _, id := range []string{"h", "a", "b", "c"} {
		_, ok = d.GetRoomByParticipant(id)
		assert.False(t, ok, "index entry for %s should be gone", id)
	}

	requireIndexConsistent(t, d)
}

func TestChallengerLeaveKeepsRoom(t *testing.T) {
	d := NewDirectory()
	room := d.CreateRoom("my room", hostOf("h"))
	_, ok := d.JoinRoom(room.ID(), challengerOf("a"))
	require.True(t, ok)
	_, ok = d.JoinRoom(room.ID(), challengerOf("b"))
	require.True(t, ok)
	require.True(t, room.StartGame())

	left, ok := d.LeaveRoom("a")
	require.True(t, ok)
	assert.Same(t, room, left)

	_, ok = d.GetRoom(room.ID())
	assert.True(t, ok)
	assert.Equal(t, models.StatusPlaying, room.Status())
	assert.Len(t, room.Challengers(), 1)
	_, ok = d.GetRoomByParticipant("a")
	assert.False(t, ok)
	_, ok = room.GameState("a")
	assert.False(t, ok, "match discarded with the leaver")

	requireIndexConsistent(t, d)
}

func TestLeaveRoomUnknownParticipant(t *testing.T) {
	d := NewDirectory()
	_, ok := d.LeaveRoom("ghost")
	assert.False(t, ok)
}

func TestDeleteRoom(t *testing.T) {
	d := NewDirectory()
	room := d.CreateRoom("my room", hostOf("h"))
	_, ok := d.JoinRoom(room.ID(), challengerOf("a"))
	require.True(t, ok)

	d.DeleteRoom(room.ID())

	_, ok = d.GetRoom(room.ID())
	assert.False(t, ok)
	_, ok = d.GetRoomByParticipant("h")
	assert.False(t, ok)
	_, ok = d.GetRoomByParticipant("a")
	assert.False(t, ok)

	d.DeleteRoom("missing") // no-op

	requireIndexConsistent(t, d)
}

func TestListWaitingRooms(t *testing.T) {
	d := NewDirectory()
	waiting := d.CreateRoom("waiting room", hostOf("h1"))
	playing := d.CreateRoom("playing room", hostOf("h2"))
	_, ok := d.JoinRoom(playing.ID(), challengerOf("a"))
	require.True(t, ok)
	require.True(t, playing.StartGame())

	rooms := d.ListWaitingRooms()
	require.Len(t, rooms, 1)
	assert.Equal(t, waiting.ID(), rooms[0].ID)
	assert.Equal(t, models.StatusWaiting, rooms[0].Status)
}
