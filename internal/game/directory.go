package game

import (
	"sync"

	"gomokusimul/internal/models"

	"github.com/google/uuid"
)

// Directory is the registry of all live rooms plus a reverse index from
// participant identity to room id. Both maps are mutated only through
// Directory methods so they stay consistent; the room's own host and
// challenger list remain the source of truth.
type Directory struct {
	mu              sync.RWMutex
	rooms           map[string]*Room
	participantRoom map[string]string
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		rooms:           make(map[string]*Room),
		participantRoom: make(map[string]string),
	}
}

// CreateRoom stores a fresh waiting room and indexes its host.
func (d *Directory) CreateRoom(name string, host models.Participant) *Room {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := uuid.New().String()[:8]
	room := NewRoom(id, name, host)
	d.rooms[id] = room
	d.participantRoom[host.ID] = id
	return room
}

// GetRoom retrieves a room by id.
func (d *Directory) GetRoom(id string) (*Room, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	room, ok := d.rooms[id]
	return room, ok
}

// GetRoomByParticipant resolves the room a participant belongs to.
func (d *Directory) GetRoomByParticipant(participantID string) (*Room, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	roomID, ok := d.participantRoom[participantID]
	if !ok {
		return nil, false
	}
	room, ok := d.rooms[roomID]
	return room, ok
}

// JoinRoom adds p as a challenger and indexes them on success.
func (d *Directory) JoinRoom(roomID string, p models.Participant) (*Room, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	room, ok := d.rooms[roomID]
	if !ok {
		return nil, false
	}
	if !room.AddChallenger(p) {
		return nil, false
	}
	d.participantRoom[p.ID] = roomID
	return room, true
}

// LeaveRoom removes the participant from their room. A leaving host
// tears the whole room down: every challenger's index entry goes with
// it. The affected room is returned either way, pre- or post-deletion,
// so the caller can still notify its former members.
func (d *Directory) LeaveRoom(participantID string) (*Room, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	roomID, ok := d.participantRoom[participantID]
	if !ok {
		return nil, false
	}
	room, ok := d.rooms[roomID]
	if !ok {
		delete(d.participantRoom, participantID)
		return nil, false
	}

	delete(d.participantRoom, participantID)

	if room.IsHost(participantID) {
		d.dropRoom(room)
	} else {
		room.RemoveChallenger(participantID)
	}
	return room, true
}

// DeleteRoom removes a room explicitly, with the same index cleanup as
// a host leave.
func (d *Directory) DeleteRoom(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	room, ok := d.rooms[id]
	if !ok {
		return
	}
	delete(d.participantRoom, room.Host().ID)
	d.dropRoom(room)
}

// dropRoom deletes the room and every challenger index entry. Callers
// hold d.mu.
func (d *Directory) dropRoom(room *Room) {
	for _, c := range room.Challengers() {
		delete(d.participantRoom, c.ID)
	}
	delete(d.rooms, room.ID())
}

// ListWaitingRooms returns summaries of the rooms a lobby may see.
func (d *Directory) ListWaitingRooms() []models.RoomSummary {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.RoomSummary, 0, len(d.rooms))
	for _, room := range d.rooms {
		if s := room.Summary(); s.Status == models.StatusWaiting {
			out = append(out, s)
		}
	}
	return out
}
