package usecase

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pixelforge/tictactoe/internal/apperror"
	"github.com/pixelforge/tictactoe/internal/entity"
	"github.com/pixelforge/tictactoe/internal/scoreboard"
	"github.com/pixelforge/tictactoe/internal/session"
)

type moveChooser interface {
	ChooseMove(board entity.Board, aiMark, difficulty string) (int, error)
}

// SessionManager owns the live sessions behind the HTTP surface, keyed by
// generated ids, and feeds every terminal outcome into the scoreboard.
type SessionManager struct {
	logger  *slog.Logger
	chooser moveChooser
	scores  *scoreboard.Scoreboard
	aiDelay time.Duration

	mu       sync.Mutex
	sessions map[string]*session.Session
}

func NewSessionManager(logger *slog.Logger, chooser moveChooser, scores *scoreboard.Scoreboard, aiDelay time.Duration) *SessionManager {
	return &SessionManager{
		logger:  logger,
		chooser: chooser,
		scores:  scores,
		aiDelay: aiDelay,

		sessions: make(map[string]*session.Session),
	}
}

// CreateSession starts a new game and returns its id. The config is
// validated by the session; nothing is registered when it is rejected.
func (that *SessionManager) CreateSession(cfg session.Config) (string, *session.Session, error) {
	gameSession := session.New(that.logger, that.chooser, that.aiDelay)
	gameSession.Subscribe(func(outcome entity.Outcome) {
		that.scores.Record(outcome, gameSession.Moves())
	})

	if err := gameSession.Start(cfg); err != nil {
		return "", nil, fmt.Errorf("failed to create session: %w", err)
	}

	id := uuid.NewString()

	that.mu.Lock()
	that.sessions[id] = gameSession
	that.mu.Unlock()

	return id, gameSession, nil
}

func (that *SessionManager) GetSession(id string) (*session.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	gameSession, ok := that.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	return gameSession, nil
}

func (that *SessionManager) Scores() scoreboard.Snapshot {
	return that.scores.Snapshot()
}
