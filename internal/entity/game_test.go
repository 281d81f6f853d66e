package entity

import (
	"testing"

	"github.com/pixelforge/tictactoe/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_IsEmpty(t *testing.T) {
	t.Run("Returns true for a fresh board", func(t *testing.T) {
		// Given: a zero-value board
		board := Board{}

		// Then: it should be empty
		assert.True(t, board.IsEmpty())
	})

	t.Run("Returns false once any cell is marked", func(t *testing.T) {
		// Given: a board with a single mark
		board := Board{}
		board[4] = PlayerX

		// Then: it should not be empty
		assert.False(t, board.IsEmpty())
	})
}

func TestOutcome_IsTerminal(t *testing.T) {
	t.Run("In-progress outcomes are not terminal", func(t *testing.T) {
		outcome := Outcome{Status: StatusInProgress}
		assert.False(t, outcome.IsTerminal())
	})

	t.Run("Won and drawn outcomes are terminal", func(t *testing.T) {
		assert.True(t, Outcome{Status: StatusWon, Winner: PlayerX}.IsTerminal())
		assert.True(t, Outcome{Status: StatusDraw}.IsTerminal())
	})
}

func TestOpponentMark(t *testing.T) {
	assert.Equal(t, PlayerO, OpponentMark(PlayerX))
	assert.Equal(t, PlayerX, OpponentMark(PlayerO))
}

func TestParseMode(t *testing.T) {
	t.Run("Accepts the known modes", func(t *testing.T) {
		for _, mode := range []string{ModeHumanVsHuman, ModeHumanVsAI} {
			parsed, err := ParseMode(mode)
			require.NoError(t, err)
			assert.Equal(t, mode, parsed)
		}
	})

	t.Run("Rejects an unknown mode", func(t *testing.T) {
		_, err := ParseMode("robots_only")
		assert.ErrorIs(t, err, apperror.ErrInvalidMode)
	})
}

func TestParseDifficulty(t *testing.T) {
	t.Run("Accepts the three difficulty levels", func(t *testing.T) {
		for _, difficulty := range []string{DifficultyEasy, DifficultyDifficult, DifficultyHard} {
			parsed, err := ParseDifficulty(difficulty)
			require.NoError(t, err)
			assert.Equal(t, difficulty, parsed)
		}
	})

	t.Run("Rejects an unknown difficulty", func(t *testing.T) {
		_, err := ParseDifficulty("nightmare")
		assert.ErrorIs(t, err, apperror.ErrInvalidDifficulty)
	})
}

func TestParseMark(t *testing.T) {
	t.Run("Accepts X and O", func(t *testing.T) {
		for _, mark := range []string{PlayerX, PlayerO} {
			parsed, err := ParseMark(mark)
			require.NoError(t, err)
			assert.Equal(t, mark, parsed)
		}
	})

	t.Run("Rejects anything else", func(t *testing.T) {
		_, err := ParseMark("Z")
		assert.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}
