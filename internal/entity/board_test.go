package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	x = MarkX
	o = MarkO
	e = Empty
)

func TestBoard_Place(t *testing.T) {
	t.Run("Places mark on empty cell", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: X is placed in the center
		err := board.Place(4, MarkX)

		// Then: the center holds X and nothing else changed
		require.NoError(t, err)
		assert.Equal(t, Board{e, e, e, e, x, e, e, e, e}, board)
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		// Given: a board with X in the corner
		board := Board{x, e, e, e, e, e, e, e, e}

		// When: O tries to take the same cell
		err := board.Place(0, MarkO)

		// Then: ErrCellOccupied is returned and X is still there
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, MarkX, board[0])
	})

	t.Run("Error on out of range cell", func(t *testing.T) {
		var board Board

		assert.ErrorIs(t, board.Place(9, MarkX), apperror.ErrInvalidCell)
		assert.ErrorIs(t, board.Place(-1, MarkX), apperror.ErrInvalidCell)
		assert.Equal(t, Board{}, board)
	})

	t.Run("Error on empty mark", func(t *testing.T) {
		var board Board

		err := board.Place(3, Empty)

		assert.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestBoard_HasWin(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		mark  Mark
		want  bool
	}{
		{
			name:  "Empty board",
			board: Board{},
			mark:  MarkX,
			want:  false,
		},
		{
			name:  "X wins first row",
			board: Board{x, x, x, o, o, e, e, e, e},
			mark:  MarkX,
			want:  true,
		},
		{
			name:  "O wins second column",
			board: Board{x, o, e, x, o, e, e, o, x},
			mark:  MarkO,
			want:  true,
		},
		{
			name:  "X wins main diagonal",
			board: Board{x, o, e, e, x, o, e, e, x},
			mark:  MarkX,
			want:  true,
		},
		{
			name:  "O wins anti-diagonal",
			board: Board{x, x, o, e, o, e, o, e, x},
			mark:  MarkO,
			want:  true,
		},
		{
			name:  "Line of the other mark does not count",
			board: Board{x, x, x, o, o, e, e, e, e},
			mark:  MarkO,
			want:  false,
		},
		{
			name:  "Two in a row is not a win",
			board: Board{x, x, e, o, o, e, e, e, e},
			mark:  MarkX,
			want:  false,
		},
		{
			name:  "Empty mark never wins",
			board: Board{},
			mark:  Empty,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.board.HasWin(tt.mark))
		})
	}
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Empty board is not full", func(t *testing.T) {
		board := Board{}
		assert.False(t, board.IsFull())
	})

	t.Run("Partial board is not full", func(t *testing.T) {
		board := Board{x, o, x, e, o, e, e, e, e}
		assert.False(t, board.IsFull())
	})

	t.Run("Full board is full", func(t *testing.T) {
		board := Board{x, o, x, x, o, o, o, x, x}
		assert.True(t, board.IsFull())
	})
}

func TestBoard_Reset(t *testing.T) {
	// Given: a finished board and a freshly constructed one
	board := Board{x, x, x, o, o, e, e, e, e}
	fresh := Board{}

	// When: the finished board is reset
	board.Reset()

	// Then: every query answers exactly like on the fresh board
	assert.Equal(t, fresh, board)
	assert.Equal(t, fresh.HasWin(MarkX), board.HasWin(MarkX))
	assert.Equal(t, fresh.HasWin(MarkO), board.HasWin(MarkO))
	assert.Equal(t, fresh.IsFull(), board.IsFull())
	assert.Equal(t, fresh.Result(), board.Result())
	assert.Len(t, board.EmptyCells(), BoardSize)
}

func TestBoard_Clear(t *testing.T) {
	// Given: a board with a trial placement
	board := Board{x, e, e, e, e, e, e, e, e}
	require.NoError(t, board.Place(4, MarkO))

	// When: the trial placement is undone
	board.Clear(4)

	// Then: the cell is empty again and can be reused
	assert.True(t, board.IsEmpty(4))
	assert.Equal(t, Board{x, e, e, e, e, e, e, e, e}, board)
}

func TestBoard_Queries(t *testing.T) {
	board := Board{x, o, e, e, x, e, o, e, e}

	assert.Equal(t, []int{2, 3, 5, 7, 8}, board.EmptyCells())
	assert.Equal(t, 2, board.Count(MarkX))
	assert.Equal(t, 2, board.Count(MarkO))
	assert.True(t, board.IsEmpty(8))
	assert.False(t, board.IsEmpty(0))
	assert.False(t, board.IsEmpty(42))
	assert.Equal(t, "XO.\n.X.\nO..\n", board.String())
}

func TestBoard_Result(t *testing.T) {
	t.Run("In progress", func(t *testing.T) {
		board := Board{x, o, e, e, x, e, e, e, e}
		assert.Equal(t, Result{Outcome: OutcomeInProgress}, board.Result())
	})

	t.Run("X wins", func(t *testing.T) {
		board := Board{x, o, e, x, o, e, x, e, e}
		assert.Equal(t, Result{Outcome: OutcomeWin, Winner: MarkX}, board.Result())
	})

	t.Run("O wins", func(t *testing.T) {
		board := Board{x, x, o, x, o, e, o, e, e}
		assert.Equal(t, Result{Outcome: OutcomeWin, Winner: MarkO}, board.Result())
	})

	t.Run("Draw", func(t *testing.T) {
		board := Board{x, o, x, x, o, o, o, x, x}
		result := board.Result()

		assert.Equal(t, Result{Outcome: OutcomeDraw}, result)
		assert.True(t, result.IsFinished())
		assert.Equal(t, "draw", result.String())
	})

	t.Run("Win on the last cell is a win, not a draw", func(t *testing.T) {
		board := Board{x, o, x, o, x, o, o, x, x}
		assert.Equal(t, Result{Outcome: OutcomeWin, Winner: MarkX}, board.Result())
	})
}

func TestMark(t *testing.T) {
	assert.Equal(t, "X", MarkX.String())
	assert.Equal(t, "O", MarkO.String())
	assert.Equal(t, "", Empty.String())

	assert.Equal(t, MarkO, MarkX.Opponent())
	assert.Equal(t, MarkX, MarkO.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}
