package broadcast

import "sync"

// Session is the write side of a connected participant. The ws package
// implements it over a gorilla conn; tests substitute fakes.
type Session interface {
	WriteJSON(v any) error
}

// Hub groups live sessions by room so game events can be fanned out to
// exactly the participants they concern.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]Session
	rooms    map[string]map[string]bool
}

// NewHub creates a new broadcast hub.
func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]Session),
		rooms:    make(map[string]map[string]bool),
	}
}

// Register adds a participant's session.
func (h *Hub) Register(participantID string, s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[participantID] = s
}

// Unregister removes a participant's session and any room membership.
func (h *Hub) Unregister(participantID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, participantID)
	for _, members := range h.rooms {
		delete(members, participantID)
	}
}

// Join adds a participant to a room's broadcast group.
func (h *Hub) Join(roomID, participantID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[string]bool)
	}
	h.rooms[roomID][participantID] = true
}

// Leave removes a participant from a room's broadcast group.
func (h *Hub) Leave(roomID, participantID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms[roomID], participantID)
}

// CloseRoom evicts every member of a torn-down room's group.
func (h *Hub) CloseRoom(roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms, roomID)
}

// SendTo delivers an event to one participant, if connected.
func (h *Hub) SendTo(participantID string, v any) {
	h.mu.RLock()
	s := h.sessions[participantID]
	h.mu.RUnlock()
	if s != nil {
		s.WriteJSON(v)
	}
}

// BroadcastRoom delivers an event to every member of a room.
func (h *Hub) BroadcastRoom(roomID string, v any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for id := range h.rooms[roomID] {
		if s := h.sessions[id]; s != nil {
			s.WriteJSON(v)
		}
	}
}

// BroadcastRoomExcept delivers an event to every member of a room but
// the named one, for "everyone else" notifications.
func (h *Hub) BroadcastRoomExcept(roomID, exceptID string, v any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for id := range h.rooms[roomID] {
		if id == exceptID {
			continue
		}
		if s := h.sessions[id]; s != nil {
			s.WriteJSON(v)
		}
	}
}

// BroadcastAll delivers an event to every connected session, in or out
// of a room. Lobby listings go this way.
func (h *Hub) BroadcastAll(v any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.sessions {
		s.WriteJSON(v)
	}
}
