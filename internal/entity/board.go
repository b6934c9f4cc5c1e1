package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// BoardSize is the number of cells on the board, indexed 0..8 row by row.
const BoardSize = 9

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	MarkX
	MarkO
)

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

// IsPlayer reports whether the mark can be placed by a player.
func (that Mark) IsPlayer() bool {
	return that == MarkX || that == MarkO
}

// WinCombos - every row, column and diagonal.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the 3x3 grid. The zero value is an empty board.
type Board [BoardSize]Mark

// Place puts mark on an empty cell. The board is left untouched on error.
func (that *Board) Place(index int, mark Mark) error {
	if !validIndex(index) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark)
	}

	if that[index] != Empty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	that[index] = mark

	return nil
}

// Clear empties a cell. Only the move search uses it, to undo a trial placement.
func (that *Board) Clear(index int) {
	that[index] = Empty
}

// HasWin reports whether any winning line is filled with mark.
func (that *Board) HasWin(mark Mark) bool {
	if !mark.IsPlayer() {
		return false
	}

	for _, combo := range WinCombos {
		if that[combo[0]] == mark && that[combo[1]] == mark && that[combo[2]] == mark {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

func (that *Board) Reset() {
	for i := range that {
		that[i] = Empty
	}
}

func (that *Board) IsEmpty(index int) bool {
	return validIndex(index) && that[index] == Empty
}

// EmptyCells returns the indexes of empty cells in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that *Board) Count(mark Mark) int {
	n := 0
	for _, cell := range that {
		if cell == mark {
			n++
		}
	}

	return n
}

// Result derives the game result from the marks on the board.
func (that *Board) Result() Result {
	switch {
	case that.HasWin(MarkX):
		return Result{Outcome: OutcomeWin, Winner: MarkX}
	case that.HasWin(MarkO):
		return Result{Outcome: OutcomeWin, Winner: MarkO}
	case that.IsFull():
		return Result{Outcome: OutcomeDraw}
	default:
		return Result{Outcome: OutcomeInProgress}
	}
}

// String renders the board as three rows, empty cells shown as ".".
func (that *Board) String() string {
	var sb strings.Builder
	for i, cell := range that {
		if cell == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteString(cell.String())
		}

		if i%3 == 2 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func validIndex(index int) bool {
	return index >= 0 && index < BoardSize
}
