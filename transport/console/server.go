package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var errQuit = errors.New("quit requested")

type uGame interface {
	NewGame(ctx context.Context) *entity.Game
	CurrentGame(ctx context.Context) *entity.Game
	MakeTurn(ctx context.Context, cell int) (*entity.TurnResult, error)
}

// Server is a line based front end for a single player sitting at a terminal.
type Server struct {
	logger *slog.Logger
	uGame  uGame
	conf   config.Console

	in  io.Reader
	out io.Writer

	handlers map[string]func(ctx context.Context, message *Message) error
}

func New(logger *slog.Logger, uGame uGame, conf config.Console, in io.Reader, out io.Writer) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,
		conf:   conf,

		in:  in,
		out: out,

		handlers: make(map[string]func(context.Context, *Message) error),
	}

	server.handlers[actionTurn] = server.handleTurn
	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionBoard] = server.handleBoard
	server.handlers[actionHelp] = server.handleHelp
	server.handlers[actionQuit] = server.handleQuit
	server.handlers[actionUnknown] = server.handleUnknown

	return server
}

// Start - runs the read-eval loop until quit, end of input or ctx cancellation.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	if err := that.send(greeting + that.renderGame(that.uGame.CurrentGame(ctx))); err != nil {
		return err
	}

	lines, readErr := that.readLines(ctx)

	for {
		if err := that.send(that.conf.Prompt); err != nil {
			return err
		}

		var line string
		select {
		case <-ctx.Done():
			log.Info("context canceled, leaving console")
			return nil
		case next, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				log.Info("end of input, leaving console")
				return nil
			}

			line = next
		}

		message := parseMessage(line)
		if message.Action == actionNone {
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("no handler for action", "action", message.Action)
			continue
		}

		err := handler(ctx, message)
		if errors.Is(err, errQuit) {
			return nil
		}

		if err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

// readLines scans the input on its own goroutine so that Start can stop on ctx.
func (that *Server) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}

		readErr <- scanner.Err()
	}()

	return lines, readErr
}

func (that *Server) send(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
