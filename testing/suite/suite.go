package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	level := slog.LevelWarn
	if testing.Verbose() {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// NewGame returns a fresh round with the given moves already applied, alternating X and O.
func (that *Suite) NewGame(cells ...int) *entity.Game {
	that.Helper()

	game := entity.NewGame(uuid.NewString())

	for _, cell := range cells {
		if err := game.MakeTurn(game.Turn, cell); err != nil {
			that.Fatalf("could not replay move %d: %v", cell, err)
		}
	}

	return game
}
