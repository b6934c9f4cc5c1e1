package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type gamePlayDep interface {
	MakeTurn(ctx context.Context, game *entity.Game, cell int) (*entity.TurnResult, error)
}

// GameManager owns the round currently being played.
type GameManager struct {
	logger *slog.Logger
	tracer trace.Tracer

	gamesStarted  metric.Int64Counter
	turnsPlayed   metric.Int64Counter
	gamesFinished metric.Int64Counter

	gamePlay gamePlayDep

	mu   sync.Mutex
	game *entity.Game
}

func NewGameManager(logger *slog.Logger, gamePlay gamePlayDep) *GameManager {
	manager := &GameManager{
		logger: logger.With("component", "game_manager"),
		tracer: otel.Tracer("usecase"),

		gamePlay: gamePlay,
	}

	meter := otel.Meter("usecase")
	manager.gamesStarted = manager.counter(meter, "game.started", "Rounds started")
	manager.turnsPlayed = manager.counter(meter, "game.turns", "Human turns accepted")
	manager.gamesFinished = manager.counter(meter, "game.finished", "Rounds finished, by status")

	return manager
}

// NewGame throws away the current round and starts a fresh one.
func (that *GameManager) NewGame(ctx context.Context) *entity.Game {
	ctx, span := that.tracer.Start(ctx, "GameManager.NewGame")
	defer span.End()

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game != nil && that.game.IsOngoing() {
		that.logger.InfoContext(ctx, "abandoning unfinished game", "gameID", that.game.ID)
	}

	that.game = entity.NewGame(uuid.NewString())

	span.SetAttributes(attribute.String("game.id", that.game.ID))
	that.gamesStarted.Add(ctx, 1)
	that.logger.InfoContext(ctx, "new game started", "method", "NewGame", "gameID", that.game.ID)

	return that.snapshot()
}

// CurrentGame returns a copy of the current round, starting one if none exists yet.
func (that *GameManager) CurrentGame(ctx context.Context) *entity.Game {
	that.mu.Lock()
	if that.game != nil {
		defer that.mu.Unlock()

		return that.snapshot()
	}
	that.mu.Unlock()

	return that.NewGame(ctx)
}

// MakeTurn plays the human's cell and the computer's reply on the current round.
func (that *GameManager) MakeTurn(ctx context.Context, cell int) (*entity.TurnResult, error) {
	ctx, span := that.tracer.Start(ctx, "GameManager.MakeTurn", trace.WithAttributes(attribute.Int("turn.human_cell", cell)))
	defer span.End()

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		span.SetStatus(codes.Error, apperror.ErrGameNotStarted.Error())

		return nil, apperror.ErrGameNotStarted
	}

	log := that.logger.With("method", "MakeTurn", "gameID", that.game.ID, "cell", cell)
	span.SetAttributes(attribute.String("game.id", that.game.ID))

	turn, err := that.gamePlay.MakeTurn(ctx, that.game, cell)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "turn rejected")
		log.DebugContext(ctx, "turn rejected", "error", err)

		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	span.SetAttributes(
		attribute.Int("turn.computer_cell", turn.ComputerCell),
		attribute.String("game.status", string(turn.Game.Status)),
	)
	log.InfoContext(ctx, "turn played", "computerCell", turn.ComputerCell, "status", turn.Game.Status)

	that.turnsPlayed.Add(ctx, 1)
	if turn.Game.IsFinished() {
		that.gamesFinished.Add(ctx, 1, metric.WithAttributes(attribute.String("game.status", string(turn.Game.Status))))
	}

	result := *turn
	result.Game = that.snapshot()

	return &result, nil
}

func (that *GameManager) counter(meter metric.Meter, name, description string) metric.Int64Counter {
	counter, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		that.logger.Warn("failed to create counter, metric disabled", "name", name, "error", err)

		return noop.Int64Counter{}
	}

	return counter
}

func (that *GameManager) snapshot() *entity.Game {
	game := *that.game

	return &game
}
