package game

import (
	"sync"

	"gomokusimul/internal/models"
)

// Room owns one host, a set of challengers and one match per
// challenger. The host plays the same sequence of moves against every
// board; each challenger only ever touches their own. All state is
// guarded by the room's mutex so commands arriving from different
// connections serialize per room.
type Room struct {
	mu          sync.Mutex
	id          string
	name        string
	host        models.Participant
	challengers []models.Participant
	matches     map[string]*Match
	status      models.RoomStatus
	pending     map[string]struct{}
}

// NewRoom creates an empty waiting room owned by host.
func NewRoom(id, name string, host models.Participant) *Room {
	return &Room{
		id:      id,
		name:    name,
		host:    host,
		matches: make(map[string]*Match),
		status:  models.StatusWaiting,
		pending: make(map[string]struct{}),
	}
}

func (r *Room) ID() string { return r.id }

func (r *Room) Host() models.Participant { return r.host }

// IsHost reports whether id is this room's host.
func (r *Room) IsHost(id string) bool { return r.host.ID == id }

func (r *Room) Status() models.RoomStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Challengers returns the challengers in join order.
func (r *Room) Challengers() []models.Participant {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Participant, len(r.challengers))
	copy(out, r.challengers)
	return out
}

// AddChallenger appends a challenger while the room is still waiting.
// Duplicate identities and late joins are refused.
func (r *Room) AddChallenger(p models.Participant) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != models.StatusWaiting {
		return false
	}
	for _, c := range r.challengers {
		if c.ID == p.ID {
			return false
		}
	}
	r.challengers = append(r.challengers, p)
	return true
}

// RemoveChallenger drops a challenger, their match and their pending
// entry. The room itself is unaffected.
func (r *Room) RemoveChallenger(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := -1
	for i, c := range r.challengers {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}
	r.challengers = append(r.challengers[:idx], r.challengers[idx+1:]...)
	delete(r.matches, id)
	delete(r.pending, id)
	return true
}

// StartGame moves the room from waiting to playing and deals one fresh
// match per challenger present, each with the host to move.
func (r *Room) StartGame() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != models.StatusWaiting || len(r.challengers) == 0 {
		return false
	}
	r.status = models.StatusPlaying
	r.matches = make(map[string]*Match, len(r.challengers))
	r.pending = make(map[string]struct{})
	for _, c := range r.challengers {
		r.matches[c.ID] = newMatch(c.ID)
	}
	return true
}

// PlaceHostStone fans the same position out to every non-terminal
// match. Boards diverge as soon as challengers reply differently, so
// the move may apply on some boards and be skipped on others; the
// return value is true only when every attempted board accepted it.
// The pending set is rebuilt afterwards to exactly the matches now
// waiting on their challenger.
func (r *Room) PlaceHostStone(pos models.Position) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != models.StatusPlaying {
		return false
	}

	allValid := true
	for _, m := range r.matches {
		if m.Terminal() {
			continue
		}
		if !m.placeHost(pos) {
			allValid = false
		}
	}

	r.pending = make(map[string]struct{})
	for id, m := range r.matches {
		if m.Phase == PhaseChallengerToMove {
			r.pending[id] = struct{}{}
		}
	}
	return allValid
}

// PlaceChallengerStone applies a move to the acting challenger's own
// match only. An accepted move always clears the challenger from the
// pending set, whatever its outcome.
func (r *Room) PlaceChallengerStone(id string, pos models.Position) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.matches[id]
	if !ok {
		return false
	}
	if !m.placeChallenger(pos) {
		return false
	}
	delete(r.pending, id)
	return true
}

// AllChallengersResponded reports whether nobody still owes a reply to
// the host's last move.
func (r *Room) AllChallengersResponded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending) == 0
}

// PendingChallengers returns the identities still owing a reply.
func (r *Room) PendingChallengers() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.pending))
	for id := range r.pending {
		out = append(out, id)
	}
	return out
}

// IsGameOver reports whether at least one match exists and every match
// has ended.
func (r *Room) IsGameOver() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.matches) == 0 {
		return false
	}
	for _, m := range r.matches {
		if !m.Terminal() {
			return false
		}
	}
	return true
}

// MarkFinished closes out a playing room. Later calls are no-ops; a
// room never leaves the finished state.
func (r *Room) MarkFinished() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status == models.StatusPlaying {
		r.status = models.StatusFinished
	}
}

// GameState returns a snapshot of one challenger's match.
func (r *Room) GameState(id string) (MatchSnapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.matches[id]
	if !ok {
		return MatchSnapshot{}, false
	}
	return m.snapshot(), true
}

// AllGameStates returns snapshots of every match in challenger join
// order.
func (r *Room) AllGameStates() []MatchSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]MatchSnapshot, 0, len(r.matches))
	for _, c := range r.challengers {
		if m, ok := r.matches[c.ID]; ok {
			out = append(out, m.snapshot())
		}
	}
	return out
}

// Summary is the lobby-facing view of the room.
func (r *Room) Summary() models.RoomSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.RoomSummary{
		ID:              r.id,
		Name:            r.name,
		HostName:        r.host.Name,
		ChallengerCount: len(r.challengers),
		Status:          r.status,
	}
}
