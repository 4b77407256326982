package game

import (
	"gomokusimul/internal/board"
	"gomokusimul/internal/models"
)

// Phase is the turn state of a single match. A finished match carries
// its result in Match.Result, so "finished with no result" cannot be
// represented.
type Phase string

const (
	PhaseHostToMove       Phase = "host"
	PhaseChallengerToMove Phase = "challenger"
	PhaseFinished         Phase = "finished"
)

// Result is the outcome of a finished match.
type Result string

const (
	ResultNone       Result = ""
	ResultHost       Result = "host"
	ResultChallenger Result = "challenger"
	ResultDraw       Result = "draw"
)

// Match is one host-vs-one-challenger game inside a room. The room owns
// it exclusively; all mutation happens under the room's lock.
type Match struct {
	ChallengerID string
	Board        models.Board
	Phase        Phase
	Result       Result
	LastMove     *models.Position
}

// MatchSnapshot is the immutable view of a match handed to the
// transport layer.
type MatchSnapshot struct {
	ChallengerID string           `json:"challengerId"`
	Board        models.Board     `json:"board"`
	Phase        Phase            `json:"phase"`
	Result       Result           `json:"result"`
	LastMove     *models.Position `json:"lastMove"`
}

func newMatch(challengerID string) *Match {
	return &Match{
		ChallengerID: challengerID,
		Phase:        PhaseHostToMove,
	}
}

// Terminal reports whether the match has ended.
func (m *Match) Terminal() bool {
	return m.Phase == PhaseFinished
}

func (m *Match) finish(res Result) {
	m.Phase = PhaseFinished
	m.Result = res
}

// placeHost applies the host's stone to this match. It reports whether
// the move was accepted; a rejected move leaves the match untouched.
func (m *Match) placeHost(pos models.Position) bool {
	if m.Phase != PhaseHostToMove {
		return false
	}
	if !board.IsValidMove(&m.Board, pos) {
		return false
	}

	m.Board[pos.Row][pos.Col] = models.StoneBlack
	m.LastMove = &models.Position{Row: pos.Row, Col: pos.Col}

	switch {
	case board.CheckWin(&m.Board, pos, models.StoneBlack):
		m.finish(ResultHost)
	case board.IsBoardFull(&m.Board):
		m.finish(ResultDraw)
	default:
		m.Phase = PhaseChallengerToMove
	}
	return true
}

// placeChallenger applies the challenger's stone to this match.
func (m *Match) placeChallenger(pos models.Position) bool {
	if m.Phase != PhaseChallengerToMove {
		return false
	}
	if !board.IsValidMove(&m.Board, pos) {
		return false
	}

	m.Board[pos.Row][pos.Col] = models.StoneWhite
	m.LastMove = &models.Position{Row: pos.Row, Col: pos.Col}

	switch {
	case board.CheckWin(&m.Board, pos, models.StoneWhite):
		m.finish(ResultChallenger)
	case board.IsBoardFull(&m.Board):
		m.finish(ResultDraw)
	default:
		m.Phase = PhaseHostToMove
	}
	return true
}

// snapshot copies the match for consumption outside the room's lock.
func (m *Match) snapshot() MatchSnapshot {
	s := MatchSnapshot{
		ChallengerID: m.ChallengerID,
		Board:        m.Board,
		Phase:        m.Phase,
		Result:       m.Result,
	}
	if m.LastMove != nil {
		mv := *m.LastMove
		s.LastMove = &mv
	}
	return s
}
