package models

// BoardSize is the fixed board dimension.
const BoardSize = 15

// Stone represents a mark on the board
type Stone string

const (
	StoneBlack Stone = "black" // placed by the host
	StoneWhite Stone = "white" // placed by a challenger
	StoneEmpty Stone = ""
)

// Position is a 0-indexed (row, col) cell on the board
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether the position lies on the board.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Board is the 15x15 game board, row-major
type Board [BoardSize][BoardSize]Stone

// RoomStatus is the lifecycle state of a room
type RoomStatus string

const (
	StatusWaiting  RoomStatus = "waiting"
	StatusPlaying  RoomStatus = "playing"
	StatusFinished RoomStatus = "finished"
)

// Participant is a connected player, identified by its session id
type Participant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsHost bool   `json:"isHost"`
}

// RoomSummary is the only room data exposed to parties outside the room
type RoomSummary struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	HostName        string     `json:"hostName"`
	ChallengerCount int        `json:"challengerCount"`
	Status          RoomStatus `json:"status"`
}
