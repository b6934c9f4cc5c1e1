package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func (that *Server) handleTurn(ctx context.Context, msg *Message) error {
	log := that.logger.With("method", "handleTurn", "cell", msg.Cell)

	game := that.uGame.CurrentGame(ctx)

	// refused here so the game manager only sees playable cells
	switch {
	case game.IsFinished():
		return that.send("The game is over. Type 'new' to play again.\n")
	case msg.Cell < 0 || msg.Cell >= entity.BoardSize:
		return that.send(fmt.Sprintf("Cell %d does not exist, pick 0-%d.\n", msg.Cell, entity.BoardSize-1))
	case !game.Board.IsEmpty(msg.Cell):
		return that.send(fmt.Sprintf("Cell %d is taken, pick an empty one.\n", msg.Cell))
	}

	turn, err := that.uGame.MakeTurn(ctx, msg.Cell)
	if err != nil {
		if errors.Is(err, apperror.ErrCellOccupied) || errors.Is(err, apperror.ErrInvalidCell) || errors.Is(err, apperror.ErrGameFinished) {
			log.Warn("turn refused", "error", err)

			return that.send(fmt.Sprintf("Move refused: %v\n", err))
		}

		if sendErr := that.send("Something went wrong, type 'new' to start over.\n"); sendErr != nil {
			return errors.Join(err, sendErr)
		}

		return fmt.Errorf("failed to make turn: %w", err)
	}

	text := ""
	if turn.ComputerMoved() {
		text = fmt.Sprintf("Computer plays %d.\n", turn.ComputerCell)
	}

	return that.send(text + that.renderGame(turn.Game))
}

func (that *Server) handleNewGame(ctx context.Context, _ *Message) error {
	game := that.uGame.NewGame(ctx)

	return that.send("New game.\n" + that.renderGame(game))
}

func (that *Server) handleBoard(ctx context.Context, _ *Message) error {
	return that.send(that.renderGame(that.uGame.CurrentGame(ctx)))
}

func (that *Server) handleHelp(_ context.Context, _ *Message) error {
	return that.send(helpText)
}

func (that *Server) handleQuit(_ context.Context, _ *Message) error {
	if err := that.send("Bye.\n"); err != nil {
		return err
	}

	return errQuit
}

func (that *Server) handleUnknown(_ context.Context, msg *Message) error {
	return that.send(fmt.Sprintf("Unknown command %q, type 'help' for the list.\n", msg.Raw))
}
