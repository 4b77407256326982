// Package protocol defines the JSON envelopes exchanged with clients
// over a websocket: one command per inbound message, one event per
// outbound message.
package protocol

import (
	"gomokusimul/internal/game"
	"gomokusimul/internal/models"
)

type CommandType string

const (
	CmdCreateRoom CommandType = "createRoom"
	CmdJoinRoom   CommandType = "joinRoom"
	CmdLeaveRoom  CommandType = "leaveRoom"
	CmdStartGame  CommandType = "startGame"
	CmdPlaceStone CommandType = "placeStone"
	CmdGetRooms   CommandType = "getRooms"
)

// Command is a client request. Unused fields stay empty depending on
// the command type.
type Command struct {
	Type       CommandType      `json:"type"`
	RoomID     string           `json:"roomId,omitempty"`
	RoomName   string           `json:"roomName,omitempty"`
	PlayerName string           `json:"playerName,omitempty"`
	Position   *models.Position `json:"position,omitempty"`
}

type EventType string

const (
	EvtRoomCreated             EventType = "roomCreated"
	EvtRoomJoined              EventType = "roomJoined"
	EvtRoomList                EventType = "roomList"
	EvtPlayerJoined            EventType = "playerJoined"
	EvtPlayerLeft              EventType = "playerLeft"
	EvtGameStarted             EventType = "gameStarted"
	EvtGameState               EventType = "gameState"
	EvtHostMoved               EventType = "hostMoved"
	EvtChallengerMoved         EventType = "challengerMoved"
	EvtGameOver                EventType = "gameOver"
	EvtAllChallengersResponded EventType = "allChallengersResponded"
	EvtError                   EventType = "error"
)

// Event is a server notification.
type Event struct {
	Type EventType `json:"type"`
	Data any       `json:"data,omitempty"`
}

type RoomJoinedPayload struct {
	Room   models.RoomSummary `json:"room"`
	Player models.Participant `json:"player"`
}

type PlayerLeftPayload struct {
	PlayerID string `json:"playerId"`
}

type ChallengerMovedPayload struct {
	ChallengerID string          `json:"challengerId"`
	Position     models.Position `json:"position"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func RoomCreated(s models.RoomSummary) Event {
	return Event{Type: EvtRoomCreated, Data: s}
}

func RoomJoined(s models.RoomSummary, p models.Participant) Event {
	return Event{Type: EvtRoomJoined, Data: RoomJoinedPayload{Room: s, Player: p}}
}

func RoomList(rooms []models.RoomSummary) Event {
	return Event{Type: EvtRoomList, Data: rooms}
}

func PlayerJoined(p models.Participant) Event {
	return Event{Type: EvtPlayerJoined, Data: p}
}

func PlayerLeft(id string) Event {
	return Event{Type: EvtPlayerLeft, Data: PlayerLeftPayload{PlayerID: id}}
}

func GameStarted() Event {
	return Event{Type: EvtGameStarted}
}

func GameState(s game.MatchSnapshot) Event {
	return Event{Type: EvtGameState, Data: s}
}

func HostMoved(pos models.Position) Event {
	return Event{Type: EvtHostMoved, Data: pos}
}

func ChallengerMoved(id string, pos models.Position) Event {
	return Event{Type: EvtChallengerMoved, Data: ChallengerMovedPayload{ChallengerID: id, Position: pos}}
}

func GameOver(s game.MatchSnapshot) Event {
	return Event{Type: EvtGameOver, Data: s}
}

func AllChallengersResponded() Event {
	return Event{Type: EvtAllChallengersResponded}
}

func Error(msg string) Event {
	return Event{Type: EvtError, Data: ErrorPayload{Message: msg}}
}
