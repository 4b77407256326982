package game

import "errors"

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrCannotJoin     = errors.New("unable to join room")
	ErrNotHost        = errors.New("only the host can start the game")
	ErrCannotStart    = errors.New("cannot start without challengers")
	ErrGameNotRunning = errors.New("game is not in progress")
	ErrInvalidMove    = errors.New("invalid move")
)
