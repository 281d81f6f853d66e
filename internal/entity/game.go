package entity

import (
	"fmt"

	"github.com/pixelforge/tictactoe/internal/apperror"
)

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDraw       = "draw"
)

const (
	ModeHumanVsHuman = "human_vs_human"
	ModeHumanVsAI    = "human_vs_ai"
)

const (
	DifficultyEasy      = "easy"
	DifficultyDifficult = "difficult"
	DifficultyHard      = "hard"
)

// Line is one of the eight index triples that wins the game when
// uniformly marked.
type Line [3]int

// WinCombos lists every winning line in a fixed scan order: rows, then
// columns, then diagonals. Evaluation depends on this order being stable.
var WinCombos = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the 3x3 grid stored row-major, index = row*3 + col.
type Board [9]string

func (that Board) IsEmpty() bool {
	for _, cell := range that {
		if cell != EmptyCell {
			return false
		}
	}

	return true
}

// Outcome classifies a board. Winner and Line are meaningful only when
// Status is StatusWon.
type Outcome struct {
	Status string `json:"status"`
	Winner string `json:"winner,omitempty"`
	Line   Line   `json:"line,omitempty"`
}

func (that Outcome) IsTerminal() bool {
	return that.Status != StatusInProgress
}

// Move is a single audit-trail entry recorded by a session.
type Move struct {
	Cell int    `json:"cell"`
	Mark string `json:"mark"`
}

func OpponentMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func ParseMode(mode string) (string, error) {
	switch mode {
	case ModeHumanVsHuman, ModeHumanVsAI:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidMode, mode)
	}
}

func ParseDifficulty(difficulty string) (string, error) {
	switch difficulty {
	case DifficultyEasy, DifficultyDifficult, DifficultyHard:
		return difficulty, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}
}

func ParseMark(mark string) (string, error) {
	switch mark {
	case PlayerX, PlayerO:
		return mark, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}
}
