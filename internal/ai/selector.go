package ai

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/pixelforge/tictactoe/internal/apperror"
	"github.com/pixelforge/tictactoe/internal/entity"
	"github.com/pixelforge/tictactoe/internal/rules"
)

var ErrNoAvailableMoves = errors.New("no available moves")

const (
	center = 4
)

var (
	corners = [4]int{0, 2, 6, 8}
	sides   = [4]int{1, 3, 5, 7}
)

// Selector dispatches move selection to one of the three strategies by
// difficulty. All randomness is drawn from a single seeded source so games
// can be replayed deterministically in tests.
type Selector struct {
	logger *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector creates a selector. A zero seed falls back to the clock.
func NewSelector(logger *slog.Logger, seed int64) *Selector {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Selector{
		logger: logger.With("component", "ai"),
		rng:    rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}
}

// ChooseMove returns an empty cell index for aiMark on the given board.
// A strategy that yields an illegal cell is replaced by a random move on
// the same board, so the selector never fails while a legal move exists.
func (that *Selector) ChooseMove(board entity.Board, aiMark, difficulty string) (int, error) {
	var cell int

	switch difficulty {
	case entity.DifficultyEasy:
		return that.randomMove(board)
	case entity.DifficultyDifficult:
		cell = that.heuristicMove(board, aiMark)
	case entity.DifficultyHard:
		cell = that.optimalMove(board, aiMark)
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}

	if cell < 0 || cell >= len(board) || board[cell] != entity.EmptyCell {
		that.logger.Warn("strategy returned an illegal cell, falling back to random", "difficulty", difficulty, "cell", cell)
		return that.randomMove(board)
	}

	return cell, nil
}

// randomMove picks uniformly among the empty cells.
func (that *Selector) randomMove(board entity.Board) (int, error) {
	availableCells := rules.LegalMoves(board)
	if len(availableCells) == 0 {
		return 0, ErrNoAvailableMoves
	}

	return availableCells[that.intn(len(availableCells))], nil
}

func (that *Selector) intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rng.Intn(n)
}
