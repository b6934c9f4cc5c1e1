package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/telemetry"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownOtel, err := telemetry.InitOtel(telemetry.Options{
		TraceFile:   conf.TraceFile,
		MetricsFile: conf.MetricsFile,
	})
	if err != nil {
		return fmt.Errorf("could not init telemetry: %w", err)
	}

	defer func() {
		if err = shutdownOtel(context.Background()); err != nil {
			log.Error("could not shutdown telemetry", "error", err)
		}
	}()

	botService := service.NewBotService(logger)
	gamePlayService := service.NewGamePlayService(logger, botService)
	gameManager := usecase.NewGameManager(logger, gamePlayService)

	log.Info("Starting console")

	consoleServer := console.New(logger, gameManager, conf.Console, os.Stdin, os.Stdout)
	if err = consoleServer.Start(ctx); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console closed, shutting down")

	return nil
}
