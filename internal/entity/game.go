package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

type Status string

const (
	StatusOngoing     Status = "ongoing"
	StatusHumanWin    Status = "human_win"
	StatusComputerWin Status = "computer_win"
	StatusDraw        Status = "draw"
)

// The human always opens with X, the computer answers with O.
const (
	HumanMark    = MarkX
	ComputerMark = MarkO
)

// Game is a single round. A new round always starts from a fresh Game.
type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Turn   Mark   `json:"player_turn"`
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  Board{},
		Turn:   HumanMark,
		Status: StatusOngoing,
	}
}

func (that *Game) MakeTurn(playerMark Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !validIndex(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Place(cell, playerMark); err != nil {
		return err
	}

	that.Turn = playerMark.Opponent()

	that.UpdateGameState()

	return nil
}

// UpdateGameState moves the round into a terminal status once the board decides it.
func (that *Game) UpdateGameState() {
	result := that.Board.Result()

	switch result.Outcome {
	// one player wins
	case OutcomeWin:
		that.Winner = result.Winner
		that.Turn = Empty
		if result.Winner == HumanMark {
			that.Status = StatusHumanWin
		} else {
			that.Status = StatusComputerWin
		}
	// tie
	case OutcomeDraw:
		that.Winner = Empty
		that.Turn = Empty
		that.Status = StatusDraw
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) Result() Result {
	return that.Board.Result()
}

func (that *Game) IsFinished() bool {
	return that.Status != StatusOngoing
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	if that.IsFinished() {
		return fmt.Errorf("%w: %s", apperror.ErrGameFinished, that.Status)
	}

	return nil
}
