package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	greeting = "Tic-tac-toe. You are X, the computer is O.\nType a cell number to move, 'help' for commands.\n\n"

	helpText = `Commands:
  0-8           place X on that cell
  new, restart  start a new game
  board         show the board
  help          show this help
  quit, exit    leave
`

	rowSeparator = "---+---+---\n"
)

// renderBoard draws the grid. Empty cells show their index when hints are on.
func renderBoard(board entity.Board, hints bool) string {
	var sb strings.Builder

	for row := range 3 {
		if row > 0 {
			sb.WriteString(rowSeparator)
		}

		for col := range 3 {
			cell := row*3 + col
			if col > 0 {
				sb.WriteByte('|')
			}

			symbol := " "
			switch {
			case board[cell] != entity.Empty:
				symbol = board[cell].String()
			case hints:
				symbol = strconv.Itoa(cell)
			}

			sb.WriteString(" " + symbol + " ")
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}

// endMessage returns the line announcing a finished round.
func endMessage(result entity.Result) string {
	switch result.Outcome {
	case entity.OutcomeWin:
		return fmt.Sprintf("%s Wins!", result.Winner)
	case entity.OutcomeDraw:
		return "It's a Draw!"
	default:
		return ""
	}
}

func (that *Server) renderGame(game *entity.Game) string {
	text := renderBoard(game.Board, !that.conf.HideHints)

	if game.IsFinished() {
		text += "\n" + endMessage(game.Result()) + "\nType 'new' to play again.\n"
	}

	return text
}
