// Package board holds the pure move-validation and win-detection rules.
// It keeps no state of its own; every match applies these functions to
// its own grid.
package board

import "gomokusimul/internal/models"

// directions covers the four axes a winning line can run along:
// horizontal, vertical, diagonal, anti-diagonal.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// IsValidMove reports whether pos is on the board and the cell is empty.
func IsValidMove(b *models.Board, pos models.Position) bool {
	if !pos.InBounds() {
		return false
	}
	return b[pos.Row][pos.Col] == models.StoneEmpty
}

// CheckWin reports whether the stone placed at lastMove completes a run
// of five or more. Counting starts at lastMove and walks up to four
// steps each way along every axis, stopping at the edge or a
// non-matching cell.
func CheckWin(b *models.Board, lastMove models.Position, stone models.Stone) bool {
	if stone == models.StoneEmpty {
		return false
	}

	for _, d := range directions {
		count := 1

		for i := 1; i < 5; i++ {
			r := lastMove.Row + d[0]*i
			c := lastMove.Col + d[1]*i
			if r < 0 || r >= models.BoardSize || c < 0 || c >= models.BoardSize {
				break
			}
			if b[r][c] != stone {
				break
			}
			count++
		}

		for i := 1; i < 5; i++ {
			r := lastMove.Row - d[0]*i
			c := lastMove.Col - d[1]*i
			if r < 0 || r >= models.BoardSize || c < 0 || c >= models.BoardSize {
				break
			}
			if b[r][c] != stone {
				break
			}
			count++
		}

		if count >= 5 {
			return true
		}
	}

	return false
}

// IsBoardFull reports whether no empty cell remains.
func IsBoardFull(b *models.Board) bool {
	for r := 0; r < models.BoardSize; r++ {
		for c := 0; c < models.BoardSize; c++ {
			if b[r][c] == models.StoneEmpty {
				return false
			}
		}
	}
	return true
}
