package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pixelforge/tictactoe/internal/ai"
	"github.com/pixelforge/tictactoe/internal/config"
	"github.com/pixelforge/tictactoe/internal/scoreboard"
	"github.com/pixelforge/tictactoe/internal/usecase"
	"github.com/pixelforge/tictactoe/transport/rest"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	selector := ai.NewSelector(logger, conf.Game.RandomSeed)
	scores := scoreboard.New()
	aiDelay := time.Duration(conf.Game.AIDelayMS) * time.Millisecond
	manager := usecase.NewSessionManager(logger, selector, scores, aiDelay)

	restServer := rest.New(logger, manager, conf.Game)

	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := restServer.Start(conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err := <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
