package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pixelforge/tictactoe/internal/apperror"
	"github.com/pixelforge/tictactoe/internal/entity"
	"github.com/pixelforge/tictactoe/internal/rules"
)

// Config selects the mode of a game. Difficulty and HumanMark are only
// consulted in human-vs-AI mode.
type Config struct {
	Mode       string
	Difficulty string
	HumanMark  string
}

type moveChooser interface {
	ChooseMove(board entity.Board, aiMark, difficulty string) (int, error)
}

// Session is the turn-taking state machine. It owns the live board; the
// rules engine and the AI only ever see value copies of it.
//
// AI turns are not taken synchronously: when a move hands the turn to the
// AI, the session schedules a deferred task that applies the AI's choice
// through the same validation path as a human move. Each Start bumps a
// generation counter, and a scheduled task that wakes up under a different
// generation discards its move instead of applying it to the new game.
type Session struct {
	logger  *slog.Logger
	chooser moveChooser
	aiDelay time.Duration

	mu         sync.Mutex
	cond       *sync.Cond
	board      entity.Board
	current    string
	running    bool
	mode       string
	difficulty string
	humanMark  string
	aiMark     string
	outcome    entity.Outcome
	moves      []entity.Move
	generation uint64
	pending    int
	observers  []func(entity.Outcome)
}

func New(logger *slog.Logger, chooser moveChooser, aiDelay time.Duration) *Session {
	s := &Session{
		logger:  logger.With("component", "session"),
		chooser: chooser,
		aiDelay: aiDelay,
	}
	s.cond = sync.NewCond(&s.mu)

	return s
}

// Subscribe registers fn to be called once per terminal outcome. Callbacks
// run outside the session lock, so they may read the session freely.
func (that *Session) Subscribe(fn func(entity.Outcome)) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.observers = append(that.observers, fn)
}

// Start resets the session to a fresh running game. X always moves first;
// if the human chose O, the AI's opening move is scheduled before control
// returns. An invalid config is rejected without touching existing state.
func (that *Session) Start(cfg Config) error {
	mode, err := entity.ParseMode(cfg.Mode)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	var difficulty, humanMark string
	if mode == entity.ModeHumanVsAI {
		if difficulty, err = entity.ParseDifficulty(cfg.Difficulty); err != nil {
			return fmt.Errorf("failed to start game: %w", err)
		}
		if humanMark, err = entity.ParseMark(cfg.HumanMark); err != nil {
			return fmt.Errorf("failed to start game: %w", err)
		}
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.generation++
	that.board = entity.Board{}
	that.current = entity.PlayerX
	that.running = true
	that.mode = mode
	that.difficulty = difficulty
	that.humanMark = humanMark
	that.outcome = entity.Outcome{Status: entity.StatusInProgress}
	that.moves = nil

	if mode == entity.ModeHumanVsAI {
		that.aiMark = entity.OpponentMark(humanMark)
		if that.current == that.aiMark {
			that.scheduleAIMove()
		}
	} else {
		that.aiMark = entity.EmptyCell
	}

	return nil
}

// SubmitMove applies one move for mark. On rejection the session is left
// unchanged; on success the turn flips and, when it is now the AI's turn,
// an AI move is scheduled.
func (that *Session) SubmitMove(cell int, mark string) (entity.Outcome, error) {
	that.mu.Lock()
	outcome, err := that.applyMove(cell, mark)
	observers := that.terminalObservers(outcome, err)
	that.mu.Unlock()

	for _, fn := range observers {
		fn(outcome)
	}

	return outcome, err
}

// Board returns a snapshot of the current board.
func (that *Session) Board() entity.Board {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.board
}

// CurrentPlayer returns the mark whose turn it is, or an empty string once
// the game is terminal.
func (that *Session) CurrentPlayer() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.running {
		return entity.EmptyCell
	}

	return that.current
}

func (that *Session) Running() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.running
}

// LastOutcome returns the outcome of the most recent evaluation.
func (that *Session) LastOutcome() entity.Outcome {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.outcome
}

// Moves returns a copy of the audit trail, in play order.
func (that *Session) Moves() []entity.Move {
	that.mu.Lock()
	defer that.mu.Unlock()

	moves := make([]entity.Move, len(that.moves))
	copy(moves, that.moves)

	return moves
}

// Wait blocks until no scheduled AI move is outstanding.
func (that *Session) Wait() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for that.pending > 0 {
		that.cond.Wait()
	}
}

// applyMove validates and applies a single move. Callers must hold the lock.
func (that *Session) applyMove(cell int, mark string) (entity.Outcome, error) {
	if !that.running {
		return that.outcome, apperror.ErrGameNotRunning
	}

	if cell < 0 || cell >= len(that.board) {
		return that.outcome, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if mark != that.current {
		return that.outcome, apperror.ErrNotYourTurn
	}

	if that.board[cell] != entity.EmptyCell {
		return that.outcome, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.board[cell] = mark
	that.moves = append(that.moves, entity.Move{Cell: cell, Mark: mark})

	outcome := rules.Evaluate(that.board)
	that.outcome = outcome

	if outcome.IsTerminal() {
		that.running = false
		return outcome, nil
	}

	that.current = entity.OpponentMark(mark)
	if that.mode == entity.ModeHumanVsAI && that.current == that.aiMark {
		that.scheduleAIMove()
	}

	return outcome, nil
}

// scheduleAIMove defers one AI move by the configured delay. Callers must
// hold the lock.
func (that *Session) scheduleAIMove() {
	generation := that.generation
	that.pending++

	time.AfterFunc(that.aiDelay, func() {
		that.runScheduledMove(generation)
	})
}

// runScheduledMove applies a previously scheduled AI move, unless the game
// it was scheduled for has been reset or finished in the meantime.
func (that *Session) runScheduledMove(generation uint64) {
	that.mu.Lock()

	var outcome entity.Outcome
	var observers []func(entity.Outcome)

	if generation == that.generation && that.running {
		cell, err := that.chooser.ChooseMove(that.board, that.aiMark, that.difficulty)
		if err != nil {
			that.logger.Error("ai failed to choose a move", "error", err)
		} else {
			outcome, err = that.applyMove(cell, that.aiMark)
			if err != nil {
				that.logger.Error("ai move was rejected", "cell", cell, "error", err)
			}
			observers = that.terminalObservers(outcome, err)
		}
	}

	that.pending--
	that.cond.Broadcast()
	that.mu.Unlock()

	for _, fn := range observers {
		fn(outcome)
	}
}

// terminalObservers returns the observers to notify for an applied move,
// or nil when the move failed or the game continues. Callers must hold the
// lock; the returned callbacks must be invoked after releasing it.
func (that *Session) terminalObservers(outcome entity.Outcome, err error) []func(entity.Outcome) {
	if err != nil || !outcome.IsTerminal() {
		return nil
	}

	observers := make([]func(entity.Outcome), len(that.observers))
	copy(observers, that.observers)

	return observers
}
