package ws

import (
	"net/http"

	"gomokusimul/internal/broadcast"
	"gomokusimul/internal/game"
	"gomokusimul/internal/models"
	"gomokusimul/internal/protocol"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Handler is the session gateway: it upgrades connections, assigns each
// one a participant identity and feeds commands into the room engine
// one at a time per connection.
type Handler struct {
	directory *game.Directory
	hub       *broadcast.Hub
	upgrader  websocket.Upgrader
}

// NewHandler creates a gateway over the given directory and hub.
// allowedOrigin restricts the websocket handshake; "*" accepts any
// origin.
func NewHandler(directory *game.Directory, hub *broadcast.Hub, allowedOrigin string) *Handler {
	return &Handler{
		directory: directory,
		hub:       hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return allowedOrigin == "*" || r.Header.Get("Origin") == allowedOrigin
			},
		},
	}
}

// RegisterRoutes sets up the websocket route.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws", h.handleWebSocket)
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	client := newClient(conn)
	h.hub.Register(client.id, client)
	log.Info().Str("participant", client.id).Msg("client connected")

	for {
		cmd, err := client.readCommand()
		if err != nil {
			break
		}
		if !client.allow() {
			client.WriteJSON(protocol.Error("too many commands"))
			continue
		}
		h.dispatch(client, cmd)
	}

	// a dropped connection is a leave
	h.handleLeave(client)
	h.hub.Unregister(client.id)
	log.Info().Str("participant", client.id).Msg("client disconnected")
}

func (h *Handler) dispatch(c *Client, cmd protocol.Command) {
	switch cmd.Type {
	case protocol.CmdCreateRoom:
		h.handleCreateRoom(c, cmd)
	case protocol.CmdJoinRoom:
		h.handleJoinRoom(c, cmd)
	case protocol.CmdLeaveRoom:
		h.handleLeave(c)
	case protocol.CmdStartGame:
		h.handleStartGame(c)
	case protocol.CmdPlaceStone:
		h.handlePlaceStone(c, cmd)
	case protocol.CmdGetRooms:
		c.WriteJSON(protocol.RoomList(h.directory.ListWaitingRooms()))
	default:
		c.WriteJSON(protocol.Error("unknown command"))
	}
}

func (h *Handler) handleCreateRoom(c *Client, cmd protocol.Command) {
	if _, ok := h.directory.GetRoomByParticipant(c.id); ok {
		c.WriteJSON(protocol.Error("you are already in a room"))
		return
	}

	host := models.Participant{ID: c.id, Name: cmd.PlayerName, IsHost: true}
	room := h.directory.CreateRoom(cmd.RoomName, host)
	h.hub.Join(room.ID(), c.id)

	c.WriteJSON(protocol.RoomCreated(room.Summary()))
	h.broadcastRoomList()
	log.Info().Str("room", room.ID()).Str("host", cmd.PlayerName).Msg("room created")
}

func (h *Handler) handleJoinRoom(c *Client, cmd protocol.Command) {
	if _, ok := h.directory.GetRoomByParticipant(c.id); ok {
		c.WriteJSON(protocol.Error("you are already in a room"))
		return
	}

	player := models.Participant{ID: c.id, Name: cmd.PlayerName}
	room, ok := h.directory.JoinRoom(cmd.RoomID, player)
	if !ok {
		c.WriteJSON(protocol.Error(game.ErrCannotJoin.Error()))
		return
	}
	h.hub.Join(room.ID(), c.id)

	c.WriteJSON(protocol.RoomJoined(room.Summary(), player))
	h.hub.BroadcastRoomExcept(room.ID(), c.id, protocol.PlayerJoined(player))
	h.broadcastRoomList()
	log.Info().Str("room", room.ID()).Str("player", cmd.PlayerName).Msg("player joined")
}

// handleLeave removes the participant from their room, if any. A
// leaving host ends the room for everyone; that is a designed
// consequence, surfaced to the remaining members as an error event
// before their broadcast group is dissolved.
func (h *Handler) handleLeave(c *Client) {
	room, ok := h.directory.LeaveRoom(c.id)
	if !ok {
		return
	}

	if room.IsHost(c.id) {
		h.hub.BroadcastRoomExcept(room.ID(), c.id, protocol.Error("the host has left the room"))
		h.hub.CloseRoom(room.ID())
		log.Info().Str("room", room.ID()).Msg("room closed, host left")
	} else {
		h.hub.Leave(room.ID(), c.id)
		h.hub.BroadcastRoom(room.ID(), protocol.PlayerLeft(c.id))
		log.Info().Str("room", room.ID()).Str("participant", c.id).Msg("player left")
	}
	h.broadcastRoomList()
}

func (h *Handler) handleStartGame(c *Client) {
	room, ok := h.directory.GetRoomByParticipant(c.id)
	if !ok {
		c.WriteJSON(protocol.Error(game.ErrRoomNotFound.Error()))
		return
	}
	if !room.IsHost(c.id) {
		c.WriteJSON(protocol.Error(game.ErrNotHost.Error()))
		return
	}
	if !room.StartGame() {
		c.WriteJSON(protocol.Error(game.ErrCannotStart.Error()))
		return
	}

	h.hub.BroadcastRoom(room.ID(), protocol.GameStarted())

	// each challenger sees their own board, the host sees them all
	hostID := room.Host().ID
	for _, state := range room.AllGameStates() {
		h.hub.SendTo(state.ChallengerID, protocol.GameState(state))
		h.hub.SendTo(hostID, protocol.GameState(state))
	}

	h.broadcastRoomList()
	log.Info().Str("room", room.ID()).Int("boards", len(room.Challengers())).Msg("game started")
}

func (h *Handler) handlePlaceStone(c *Client, cmd protocol.Command) {
	if cmd.Position == nil {
		c.WriteJSON(protocol.Error(game.ErrInvalidMove.Error()))
		return
	}
	pos := *cmd.Position

	room, ok := h.directory.GetRoomByParticipant(c.id)
	if !ok || room.Status() != models.StatusPlaying {
		c.WriteJSON(protocol.Error(game.ErrGameNotRunning.Error()))
		return
	}

	if room.IsHost(c.id) {
		h.placeHostStone(c, room, pos)
	} else {
		h.placeChallengerStone(c, room, pos)
	}

	if room.IsGameOver() {
		room.MarkFinished()
		h.broadcastRoomList()
	}
}

// placeHostStone fans the host's move out to every board. Boards
// diverge once challengers reply differently, so the move may land on
// some boards and not others; hostMoved still goes to the whole room
// and each board's truth travels in its own gameState.
func (h *Handler) placeHostStone(c *Client, room *game.Room, pos models.Position) {
	room.PlaceHostStone(pos)

	h.hub.BroadcastRoom(room.ID(), protocol.HostMoved(pos))

	hostID := room.Host().ID
	for _, state := range room.AllGameStates() {
		h.hub.SendTo(state.ChallengerID, protocol.GameState(state))
		h.hub.SendTo(hostID, protocol.GameState(state))
		if state.Result != game.ResultNone {
			h.hub.SendTo(state.ChallengerID, protocol.GameOver(state))
			h.hub.SendTo(hostID, protocol.GameOver(state))
		}
	}
}

func (h *Handler) placeChallengerStone(c *Client, room *game.Room, pos models.Position) {
	if !room.PlaceChallengerStone(c.id, pos) {
		c.WriteJSON(protocol.Error(game.ErrInvalidMove.Error()))
		return
	}

	state, ok := room.GameState(c.id)
	if !ok {
		return
	}

	hostID := room.Host().ID
	c.WriteJSON(protocol.GameState(state))
	h.hub.SendTo(hostID, protocol.GameState(state))
	h.hub.SendTo(hostID, protocol.ChallengerMoved(c.id, pos))
	if state.Result != game.ResultNone {
		c.WriteJSON(protocol.GameOver(state))
		h.hub.SendTo(hostID, protocol.GameOver(state))
	}

	if room.AllChallengersResponded() {
		h.hub.SendTo(hostID, protocol.AllChallengersResponded())
	}
}

func (h *Handler) broadcastRoomList() {
	h.hub.BroadcastAll(protocol.RoomList(h.directory.ListWaitingRooms()))
}
