package apperror

import "errors"

// Illegal moves: always recoverable, the session is left untouched.
var (
	ErrGameNotRunning = errors.New("game is not running")
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrNotYourTurn    = errors.New("it's not your turn")
)

// Invalid configuration: rejected at start, no game state is created.
var (
	ErrInvalidMode       = errors.New("unknown game mode")
	ErrInvalidDifficulty = errors.New("unknown ai difficulty")
	ErrInvalidMark       = errors.New("unknown player mark")
)

var ErrSessionNotFound = errors.New("session not found")
