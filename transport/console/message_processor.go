package console

import (
	"strconv"
	"strings"
)

const (
	actionNone    = ""
	actionTurn    = "game:turn"
	actionNewGame = "game:new"
	actionBoard   = "game:board"
	actionHelp    = "help"
	actionQuit    = "quit"
	actionUnknown = "unknown"
)

var commands = map[string]string{
	"new":     actionNewGame,
	"restart": actionNewGame,
	"reset":   actionNewGame,
	"board":   actionBoard,
	"show":    actionBoard,
	"help":    actionHelp,
	"?":       actionHelp,
	"quit":    actionQuit,
	"exit":    actionQuit,
	"q":       actionQuit,
}

// Message is one parsed input line.
type Message struct {
	Action string
	Cell   int
	Raw    string
}

func parseMessage(line string) *Message {
	raw := strings.TrimSpace(line)
	if raw == "" {
		return &Message{Action: actionNone}
	}

	if cell, err := strconv.Atoi(raw); err == nil {
		return &Message{Action: actionTurn, Cell: cell, Raw: raw}
	}

	if action, ok := commands[strings.ToLower(raw)]; ok {
		return &Message{Action: action, Raw: raw}
	}

	return &Message{Action: actionUnknown, Raw: raw}
}
