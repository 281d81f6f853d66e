package ai

import (
	"io"
	"log/slog"
	"testing"

	"github.com/pixelforge/tictactoe/internal/apperror"
	"github.com/pixelforge/tictactoe/internal/entity"
	"github.com/pixelforge/tictactoe/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSelector(t *testing.T, seed int64) *Selector {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewSelector(logger, seed)
}

func TestSelector_ChooseMove(t *testing.T) {
	t.Run("Rejects an unknown difficulty", func(t *testing.T) {
		// Given: a selector and an empty board
		selector := newTestSelector(t, 1)

		// When: choosing with a difficulty that does not exist
		_, err := selector.ChooseMove(entity.Board{}, entity.PlayerX, "nightmare")

		// Then: it should return ErrInvalidDifficulty
		assert.ErrorIs(t, err, apperror.ErrInvalidDifficulty)
	})

	t.Run("Easy difficulty returns a legal cell", func(t *testing.T) {
		// Given: a board with a few marks placed
		selector := newTestSelector(t, 1)
		board := entity.Board{}
		board[0] = entity.PlayerX
		board[4] = entity.PlayerO

		// When: choosing a move on easy
		cell, err := selector.ChooseMove(board, entity.PlayerX, entity.DifficultyEasy)

		// Then: the chosen cell should be empty
		require.NoError(t, err)
		assert.Equal(t, entity.EmptyCell, board[cell])
	})

	t.Run("Easy difficulty fails on a full board", func(t *testing.T) {
		// Given: a full board
		selector := newTestSelector(t, 1)
		board := entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerO, entity.PlayerO, entity.PlayerX,
			entity.PlayerX, entity.PlayerX, entity.PlayerO,
		}

		// When: choosing a move
		_, err := selector.ChooseMove(board, entity.PlayerX, entity.DifficultyEasy)

		// Then: there is nothing to play
		assert.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}

func TestHeuristicStrategy(t *testing.T) {
	t.Run("Takes an immediate win when offered one", func(t *testing.T) {
		// Given: X can complete the top row at cell 2
		selector := newTestSelector(t, 1)
		board := entity.Board{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		// When: choosing a move on difficult
		cell, err := selector.ChooseMove(board, entity.PlayerX, entity.DifficultyDifficult)

		// Then: it should take the win, not the block at 5
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Blocks the opponent's immediate win", func(t *testing.T) {
		// Given: O threatens the top row at cell 2 and X has no win
		selector := newTestSelector(t, 1)
		board := entity.Board{
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.PlayerX, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		// When: choosing a move on difficult
		cell, err := selector.ChooseMove(board, entity.PlayerX, entity.DifficultyDifficult)

		// Then: it should occupy the threatened cell
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Takes the center when no win or block exists", func(t *testing.T) {
		// Given: only X's opening corner is on the board
		selector := newTestSelector(t, 1)
		board := entity.Board{}
		board[0] = entity.PlayerX

		// When: choosing a move for O on difficult
		cell, err := selector.ChooseMove(board, entity.PlayerO, entity.DifficultyDifficult)

		// Then: it should take the center
		require.NoError(t, err)
		assert.Equal(t, 4, cell)
	})

	t.Run("Falls through to a corner when the center is taken", func(t *testing.T) {
		// Given: X holds the center and O a side, no threats anywhere
		selector := newTestSelector(t, 1)
		board := entity.Board{}
		board[4] = entity.PlayerX
		board[1] = entity.PlayerO

		// When: choosing a move for X on difficult
		cell, err := selector.ChooseMove(board, entity.PlayerX, entity.DifficultyDifficult)

		// Then: it should pick a corner
		require.NoError(t, err)
		assert.Contains(t, []int{0, 2, 6, 8}, cell)

		// And: the corner search is deterministic
		again, err := selector.ChooseMove(board, entity.PlayerX, entity.DifficultyDifficult)
		require.NoError(t, err)
		assert.Equal(t, cell, again)
	})
}

func TestOptimalStrategy(t *testing.T) {
	t.Run("Opens with a corner on an empty board", func(t *testing.T) {
		// Given: a fresh board
		selector := newTestSelector(t, 7)

		// When: choosing the opening move on hard
		cell, err := selector.ChooseMove(entity.Board{}, entity.PlayerX, entity.DifficultyHard)

		// Then: the opening book restricts the choice to the corners
		require.NoError(t, err)
		assert.Contains(t, []int{0, 2, 6, 8}, cell)
	})

	t.Run("Answers a corner opening with the center", func(t *testing.T) {
		// Given: X opened in the top-left corner
		selector := newTestSelector(t, 1)
		board := entity.Board{}
		board[0] = entity.PlayerX

		// When: choosing O's reply on hard
		cell, err := selector.ChooseMove(board, entity.PlayerO, entity.DifficultyHard)

		// Then: the center is the unique non-losing reply
		require.NoError(t, err)
		assert.Equal(t, 4, cell)
	})

	t.Run("Self-play from an empty board always draws", func(t *testing.T) {
		for _, seed := range []int64{1, 2, 3, 42, 1337} {
			// Given: one selector playing both marks
			selector := newTestSelector(t, seed)

			// When: playing a full game on hard
			outcome := playGame(t, selector, entity.DifficultyHard, entity.DifficultyHard)

			// Then: optimal play never produces a winner
			assert.Equal(t, entity.StatusDraw, outcome.Status, "seed %d", seed)
		}
	})

	t.Run("Never loses as O against random play", func(t *testing.T) {
		// Given: a random X against an optimal O
		selector := newTestSelector(t, 99)

		for i := 0; i < 100; i++ {
			// When: playing a full game
			outcome := playGame(t, selector, entity.DifficultyEasy, entity.DifficultyHard)

			// Then: X never wins
			if outcome.Status == entity.StatusWon {
				require.Equal(t, entity.PlayerO, outcome.Winner, "game %d", i)
			}
		}
	})
}

// playGame plays X and O against each other with the given difficulties
// until the board is terminal.
func playGame(t *testing.T, selector *Selector, difficultyX, difficultyO string) entity.Outcome {
	t.Helper()

	board := entity.Board{}
	mark := entity.PlayerX

	for {
		outcome := rules.Evaluate(board)
		if outcome.IsTerminal() {
			return outcome
		}

		difficulty := difficultyX
		if mark == entity.PlayerO {
			difficulty = difficultyO
		}

		cell, err := selector.ChooseMove(board, mark, difficulty)
		require.NoError(t, err)
		require.Equal(t, entity.EmptyCell, board[cell], "strategy must return an empty cell")

		board[cell] = mark
		mark = entity.OpponentMark(mark)
	}
}
