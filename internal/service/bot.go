package service

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// winScore is the value of a win found right after the candidate move.
// Every further ply costs one point so quicker wins and slower losses rank higher.
const winScore = 10

type BotService interface {
	SelectMove(board *entity.Board) (int, error)
	MakeTurn(game *entity.Game) (int, error)
}

type botService struct {
	logger *slog.Logger
	mark   entity.Mark
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		mark:   entity.ComputerMark,
	}
}

// SelectMove returns the cell that is best for the computer, assuming the
// human answers perfectly. Ties go to the lowest index.
//
// The search places and clears trial marks on board itself. The board is back
// in its original state when SelectMove returns.
func (that *botService) SelectMove(board *entity.Board) (int, error) {
	if board.HasWin(that.mark) || board.HasWin(that.mark.Opponent()) {
		return entity.NoCell, apperror.ErrGameFinished
	}

	if board.IsFull() {
		return entity.NoCell, apperror.ErrNoAvailableMoves
	}

	s := &search{board: board, maximizer: that.mark, minimizer: that.mark.Opponent()}

	bestScore := math.MinInt
	bestCell := entity.NoCell

	for cell := range board {
		if board[cell] != entity.Empty {
			continue
		}

		board[cell] = s.maximizer
		score := s.minimax(0, false)
		board.Clear(cell)

		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	that.logger.Debug("move selected", "cell", bestCell, "score", bestScore, "positions", s.positions)

	return bestCell, nil
}

func (that *botService) MakeTurn(game *entity.Game) (int, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return entity.NoCell, err
	}

	cell, err := that.SelectMove(&game.Board)
	if err != nil {
		return entity.NoCell, fmt.Errorf("failed to select move: %w", err)
	}

	if err = game.MakeTurn(that.mark, cell); err != nil {
		return entity.NoCell, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return cell, nil
}

// search holds the state shared by one SelectMove call.
type search struct {
	board     *entity.Board
	maximizer entity.Mark
	minimizer entity.Mark
	positions int
}

func (that *search) minimax(depth int, maximizing bool) int {
	that.positions++

	switch {
	case that.board.HasWin(that.maximizer):
		return winScore - depth
	case that.board.HasWin(that.minimizer):
		return depth - winScore
	case that.board.IsFull():
		return 0
	}

	if maximizing {
		best := math.MinInt
		for cell := range that.board {
			if that.board[cell] != entity.Empty {
				continue
			}

			that.board[cell] = that.maximizer
			best = max(best, that.minimax(depth+1, false))
			that.board.Clear(cell)
		}

		return best
	}

	best := math.MaxInt
	for cell := range that.board {
		if that.board[cell] != entity.Empty {
			continue
		}

		that.board[cell] = that.minimizer
		best = min(best, that.minimax(depth+1, true))
		that.board.Clear(cell)
	}

	return best
}
