package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pixelforge/tictactoe/internal/apperror"
	"github.com/pixelforge/tictactoe/internal/config"
	"github.com/pixelforge/tictactoe/internal/entity"
	"github.com/pixelforge/tictactoe/internal/scoreboard"
	"github.com/pixelforge/tictactoe/internal/session"
)

type sessionManager interface {
	CreateSession(cfg session.Config) (string, *session.Session, error)
	GetSession(id string) (*session.Session, error)
	Scores() scoreboard.Snapshot
}

type handlers struct {
	logger   *slog.Logger
	manager  sessionManager
	defaults config.Game
}

func newHandlers(logger *slog.Logger, manager sessionManager, defaults config.Game) *handlers {
	return &handlers{
		logger:   logger.With("component", "rest-handlers"),
		manager:  manager,
		defaults: defaults,
	}
}

type startRequest struct {
	Mode         string `json:"mode"`
	AIDifficulty string `json:"ai_difficulty"`
	HumanMark    string `json:"human_mark"`
}

type moveRequest struct {
	Cell int    `json:"cell"`
	Mark string `json:"mark"`
}

type gameResponse struct {
	ID         string         `json:"id"`
	Board      entity.Board   `json:"board"`
	PlayerTurn string         `json:"player_turn"`
	Running    bool           `json:"running"`
	Outcome    entity.Outcome `json:"outcome"`
	Moves      []entity.Move  `json:"moves"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	id, gameSession, err := that.manager.CreateSession(that.sessionConfig(req))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, gameStateResponse(id, gameSession))
}

func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	gameSession, err := that.manager.GetSession(id)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, gameStateResponse(id, gameSession))
}

func (that *handlers) MakeMove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	gameSession, err := that.manager.GetSession(id)
	if err != nil {
		that.writeError(w, err)
		return
	}

	if _, err = gameSession.SubmitMove(req.Cell, req.Mark); err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, gameStateResponse(id, gameSession))
}

func (that *handlers) RestartGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	gameSession, err := that.manager.GetSession(id)
	if err != nil {
		that.writeError(w, err)
		return
	}

	if err = gameSession.Start(that.sessionConfig(req)); err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, gameStateResponse(id, gameSession))
}

func (that *handlers) GetScoreboard(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, that.manager.Scores())
}

// sessionConfig fills request fields left empty from the configured
// defaults.
func (that *handlers) sessionConfig(req startRequest) session.Config {
	cfg := session.Config{
		Mode:       req.Mode,
		Difficulty: req.AIDifficulty,
		HumanMark:  req.HumanMark,
	}

	if cfg.Mode == "" {
		cfg.Mode = that.defaults.Mode
	}
	if cfg.Difficulty == "" {
		cfg.Difficulty = that.defaults.AIDifficulty
	}
	if cfg.HumanMark == "" {
		cfg.HumanMark = that.defaults.HumanMark
	}

	return cfg
}

func gameStateResponse(id string, gameSession *session.Session) gameResponse {
	return gameResponse{
		ID:         id,
		Board:      gameSession.Board(),
		PlayerTurn: gameSession.CurrentPlayer(),
		Running:    gameSession.Running(),
		Outcome:    gameSession.LastOutcome(),
		Moves:      gameSession.Moves(),
	}
}

func (that *handlers) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidMode),
		errors.Is(err, apperror.ErrInvalidDifficulty),
		errors.Is(err, apperror.ErrInvalidMark):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotRunning),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn):
		status = http.StatusConflict
	default:
		that.logger.Error("unexpected handler error", "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
