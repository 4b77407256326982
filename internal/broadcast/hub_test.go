package broadcast

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSession struct {
	mu       sync.Mutex
	received []any
}

func (f *fakeSession) WriteJSON(v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.received = append(f.received, v)
	return nil
}

func (f *fakeSession) events() []any {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]any, len(f.received))
	copy(out, f.received)
	return out
}

func TestSendTo(t *testing.T) {
	h := NewHub()
	s := &fakeSession{}
	h.Register("p1", s)

	h.SendTo("p1", "hello")
	h.SendTo("nobody", "lost")

	assert.Equal(t, []any{"hello"}, s.events())
}

func TestBroadcastRoom(t *testing.T) {
	h := NewHub()
	inRoom := &fakeSession{}
	alsoIn := &fakeSession{}
	outside := &fakeSession{}
	h.Register("a", inRoom)
	h.Register("b", alsoIn)
	h.Register("c", outside)
	h.Join("room1", "a")
	h.Join("room1", "b")

	h.BroadcastRoom("room1", "update")

	assert.Equal(t, []any{"update"}, inRoom.events())
	assert.Equal(t, []any{"update"}, alsoIn.events())
	assert.Empty(t, outside.events())
}

func TestBroadcastRoomExcept(t *testing.T) {
	h := NewHub()
	actor := &fakeSession{}
	other := &fakeSession{}
	h.Register("a", actor)
	h.Register("b", other)
	h.Join("room1", "a")
	h.Join("room1", "b")

	h.BroadcastRoomExcept("room1", "a", "joined")

	assert.Empty(t, actor.events())
	assert.Equal(t, []any{"joined"}, other.events())
}

func TestBroadcastAll(t *testing.T) {
	h := NewHub()
	s1 := &fakeSession{}
	s2 := &fakeSession{}
	h.Register("a", s1)
	h.Register("b", s2)
	h.Join("room1", "a")

	h.BroadcastAll("rooms")

	assert.Equal(t, []any{"rooms"}, s1.events())
	assert.Equal(t, []any{"rooms"}, s2.events())
}

func TestLeaveAndCloseRoom(t *testing.T) {
	h := NewHub()
	s1 := &fakeSession{}
	s2 := &fakeSession{}
	h.Register("a", s1)
	h.Register("b", s2)
	h.Join("room1", "a")
	h.Join("room1", "b")

	h.Leave("room1", "a")
	h.BroadcastRoom("room1", "one")
	assert.Empty(t, s1.events())
	assert.Equal(t, []any{"one"}, s2.events())

	h.CloseRoom("room1")
	h.BroadcastRoom("room1", "two")
	assert.Equal(t, []any{"one"}, s2.events(), "closed room reaches nobody")
}

func TestUnregisterDropsMembership(t *testing.T) {
	h := NewHub()
	s := &fakeSession{}
	h.Register("a", s)
	h.Join("room1", "a")

	h.Unregister("a")
	h.BroadcastRoom("room1", "x")
	h.BroadcastAll("y")
	h.SendTo("a", "z")

	assert.Empty(t, s.events())
}
