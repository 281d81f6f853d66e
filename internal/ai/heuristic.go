package ai

import (
	"math"

	"github.com/pixelforge/tictactoe/internal/entity"
	"github.com/pixelforge/tictactoe/internal/rules"
)

const (
	heuristicDepthLimit = 3

	centerWeight = 6
	cornerWeight = 3
)

// heuristicMove walks an ordered decision ladder: take an immediate win,
// block the opponent's immediate win, take the center, pick the best corner
// by a shallow search, otherwise pick a random side. Returns -1 when no step
// applies so the selector can fall back to a random move.
func (that *Selector) heuristicMove(board entity.Board, aiMark string) int {
	opponent := entity.OpponentMark(aiMark)

	if cell := winningCell(board, aiMark); cell >= 0 {
		return cell
	}

	if cell := winningCell(board, opponent); cell >= 0 {
		return cell
	}

	if board[center] == entity.EmptyCell {
		return center
	}

	if cell := bestCorner(board, aiMark); cell >= 0 {
		return cell
	}

	openSides := make([]int, 0, len(sides))
	for _, side := range sides {
		if board[side] == entity.EmptyCell {
			openSides = append(openSides, side)
		}
	}
	if len(openSides) > 0 {
		return openSides[that.intn(len(openSides))]
	}

	return -1
}

// winningCell returns the first empty cell that completes a line for mark,
// or -1 when no one-move win exists.
func winningCell(board entity.Board, mark string) int {
	for _, cell := range rules.LegalMoves(board) {
		board[cell] = mark
		outcome := rules.Evaluate(board)
		board[cell] = entity.EmptyCell

		if outcome.Status == entity.StatusWon && outcome.Winner == mark {
			return cell
		}
	}

	return -1
}

// bestCorner scores each empty corner with a depth-bounded, unpruned
// minimax and keeps the first corner with the maximal score.
func bestCorner(board entity.Board, aiMark string) int {
	opponent := entity.OpponentMark(aiMark)

	bestCell := -1
	bestScore := math.MinInt

	for _, corner := range corners {
		if board[corner] != entity.EmptyCell {
			continue
		}

		board[corner] = aiMark
		score := boundedScore(&board, aiMark, opponent, 0)
		board[corner] = entity.EmptyCell

		if score > bestScore {
			bestCell = corner
			bestScore = score
		}
	}

	return bestCell
}

// boundedScore searches up to heuristicDepthLimit plies beyond the probed
// corner and falls back to a static position score at the cutoff. Cells are
// restored after every probe so the caller's board is never altered.
func boundedScore(board *entity.Board, aiMark, toMove string, depth int) int {
	switch outcome := rules.Evaluate(*board); outcome.Status {
	case entity.StatusWon:
		if outcome.Winner == aiMark {
			return 100
		}
		return -100
	case entity.StatusDraw:
		return 0
	}

	if depth >= heuristicDepthLimit {
		return staticScore(*board, aiMark)
	}

	next := entity.OpponentMark(toMove)

	if toMove == aiMark {
		best := math.MinInt
		for _, cell := range rules.LegalMoves(*board) {
			board[cell] = toMove
			score := boundedScore(board, aiMark, next, depth+1)
			board[cell] = entity.EmptyCell

			if score > best {
				best = score
			}
		}
		return best
	}

	best := math.MaxInt
	for _, cell := range rules.LegalMoves(*board) {
		board[cell] = toMove
		score := boundedScore(board, aiMark, next, depth+1)
		board[cell] = entity.EmptyCell

		if score < best {
			best = score
		}
	}
	return best
}

// staticScore values center and corner occupancy only.
func staticScore(board entity.Board, aiMark string) int {
	opponent := entity.OpponentMark(aiMark)

	score := 0
	switch board[center] {
	case aiMark:
		score += centerWeight
	case opponent:
		score -= centerWeight
	}

	for _, corner := range corners {
		switch board[corner] {
		case aiMark:
			score += cornerWeight
		case opponent:
			score -= cornerWeight
		}
	}

	return score
}
