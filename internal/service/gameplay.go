package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type GamePlayService interface {
	MakeTurn(ctx context.Context, game *entity.Game, cell int) (*entity.TurnResult, error)
}

type gamePlayService struct {
	logger *slog.Logger

	botService BotService
}

func NewGamePlayService(logger *slog.Logger, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:     logger,
		botService: botService,
	}
}

// MakeTurn applies the human move and, while the round is still open, the computer's reply.
func (that *gamePlayService) MakeTurn(ctx context.Context, game *entity.Game, cell int) (*entity.TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	if err := game.MakeTurn(entity.HumanMark, cell); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	turn := &entity.TurnResult{
		Game:         game,
		HumanCell:    cell,
		ComputerCell: entity.NoCell,
	}

	if game.IsFinished() {
		turn.Result = game.Result()
		log.InfoContext(ctx, "game finished on human turn", "status", game.Status)

		return turn, nil
	}

	botCell, err := that.botService.MakeTurn(game)
	if err != nil {
		return nil, fmt.Errorf("bot failed to make turn: %w", err)
	}

	turn.ComputerCell = botCell
	turn.Result = game.Result()

	if game.IsFinished() {
		log.InfoContext(ctx, "game finished on computer turn", "status", game.Status, "cell", botCell)
	}

	return turn, nil
}
