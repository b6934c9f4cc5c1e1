package entity

type Outcome uint8

const (
	OutcomeInProgress Outcome = iota
	OutcomeWin
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Result - outcome of a board position. Winner is set only for OutcomeWin.
type Result struct {
	Outcome Outcome `json:"outcome"`
	Winner  Mark    `json:"winner,omitempty"`
}

func (that Result) IsFinished() bool {
	return that.Outcome != OutcomeInProgress
}

func (that Result) String() string {
	if that.Outcome == OutcomeWin {
		return "win:" + that.Winner.String()
	}

	return that.Outcome.String()
}
