package scoreboard

import (
	"sync"

	"github.com/pixelforge/tictactoe/internal/entity"
)

const defaultHistoryLimit = 50

// Entry is one finished game as kept for history display.
type Entry struct {
	Status string        `json:"status"`
	Winner string        `json:"winner,omitempty"`
	Line   entity.Line   `json:"line,omitempty"`
	Moves  []entity.Move `json:"moves"`
}

// Snapshot is a point-in-time copy of the tallies and history.
type Snapshot struct {
	XWins   int     `json:"x_wins"`
	OWins   int     `json:"o_wins"`
	Draws   int     `json:"draws"`
	History []Entry `json:"history"`
}

// Scoreboard aggregates terminal outcomes for display. It lives outside the
// session and observes it, so the core never holds presentation state.
type Scoreboard struct {
	mu      sync.Mutex
	xWins   int
	oWins   int
	draws   int
	history []Entry
	limit   int
}

func New() *Scoreboard {
	return &Scoreboard{limit: defaultHistoryLimit}
}

// Record tallies one terminal outcome together with the game's audit trail.
// Non-terminal outcomes are ignored.
func (that *Scoreboard) Record(outcome entity.Outcome, moves []entity.Move) {
	if !outcome.IsTerminal() {
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	switch {
	case outcome.Status == entity.StatusDraw:
		that.draws++
	case outcome.Winner == entity.PlayerX:
		that.xWins++
	case outcome.Winner == entity.PlayerO:
		that.oWins++
	}

	that.history = append(that.history, Entry{
		Status: outcome.Status,
		Winner: outcome.Winner,
		Line:   outcome.Line,
		Moves:  moves,
	})
	if len(that.history) > that.limit {
		that.history = that.history[len(that.history)-that.limit:]
	}
}

func (that *Scoreboard) Snapshot() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	history := make([]Entry, len(that.history))
	copy(history, that.history)

	return Snapshot{
		XWins:   that.xWins,
		OWins:   that.oWins,
		Draws:   that.draws,
		History: history,
	}
}
