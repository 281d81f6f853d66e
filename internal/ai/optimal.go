package ai

import (
	"math"

	"github.com/pixelforge/tictactoe/internal/entity"
	"github.com/pixelforge/tictactoe/internal/rules"
)

const winScore = 100

// optimalMove runs a full-depth minimax with alpha-beta pruning for aiMark.
// Wins score 100-depth and losses -100+depth, so the search prefers faster
// wins and slower losses. Moves are tried in ascending index order and ties
// keep the first-encountered cell, which makes the choice deterministic.
//
// On an empty board the search is skipped and a random corner is played:
// by symmetry every corner opening is optimal, and the shortcut keeps the
// opening varied without changing the game-theoretic value.
func (that *Selector) optimalMove(board entity.Board, aiMark string) int {
	if board.IsEmpty() {
		return corners[that.intn(len(corners))]
	}

	opponent := entity.OpponentMark(aiMark)

	bestCell := -1
	bestScore := math.MinInt
	alpha, beta := math.MinInt, math.MaxInt

	for _, cell := range rules.LegalMoves(board) {
		board[cell] = aiMark
		score := alphaBeta(&board, aiMark, opponent, 1, alpha, beta)
		board[cell] = entity.EmptyCell

		if score > bestScore {
			bestCell = cell
			bestScore = score
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}

	return bestCell
}

// alphaBeta searches to the end of the game, maximizing for aiMark and
// minimizing for the opponent. A branch is cut once beta <= alpha; the
// cutoff never changes the returned value, only the work done. Every probed
// cell is restored before returning.
func alphaBeta(board *entity.Board, aiMark, toMove string, depth, alpha, beta int) int {
	switch outcome := rules.Evaluate(*board); outcome.Status {
	case entity.StatusWon:
		if outcome.Winner == aiMark {
			return winScore - depth
		}
		return -winScore + depth
	case entity.StatusDraw:
		return 0
	}

	next := entity.OpponentMark(toMove)

	if toMove == aiMark {
		best := math.MinInt
		for _, cell := range rules.LegalMoves(*board) {
			board[cell] = toMove
			score := alphaBeta(board, aiMark, next, depth+1, alpha, beta)
			board[cell] = entity.EmptyCell

			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, cell := range rules.LegalMoves(*board) {
		board[cell] = toMove
		score := alphaBeta(board, aiMark, next, depth+1, alpha, beta)
		board[cell] = entity.EmptyCell

		if score < best {
			best = score
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
