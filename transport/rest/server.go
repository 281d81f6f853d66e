package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pixelforge/tictactoe/internal/config"
)

type Server struct {
	logger *slog.Logger
	router chi.Router
}

func New(logger *slog.Logger, manager sessionManager, defaults config.Game) *Server {
	h := newHandlers(logger, manager, defaults)

	router := chi.NewRouter()
	router.Get("/ping", h.Ping)
	router.Get("/scoreboard", h.GetScoreboard)
	router.Post("/games", h.CreateGame)
	router.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", h.GetGame)
		r.Post("/moves", h.MakeMove)
		r.Post("/restart", h.RestartGame)
	})

	return &Server{
		logger: logger.With("component", "rest"),
		router: router,
	}
}

// Handler exposes the routed handler, mainly for tests.
func (that *Server) Handler() http.Handler {
	return that.router
}

func (that *Server) Start(port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
