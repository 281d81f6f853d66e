package rules

import (
	"github.com/pixelforge/tictactoe/internal/entity"
)

// LegalMoves returns the indices of every empty cell in ascending order.
func LegalMoves(board entity.Board) []int {
	moves := make([]int, 0, len(board))
	for i, cell := range board {
		if cell == entity.EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}

// Evaluate classifies a board. It scans the winning lines in the fixed
// WinCombos order and reports the first completed one, so the result is
// deterministic even on boards where two lines complete at once.
func Evaluate(board entity.Board) entity.Outcome {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return entity.Outcome{Status: entity.StatusWon, Winner: a, Line: combo}
		}
	}

	// the game continues until all the squares are full
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return entity.Outcome{Status: entity.StatusInProgress}
		}
	}

	return entity.Outcome{Status: entity.StatusDraw}
}
