package entity

// NoCell marks a computer reply that did not happen because the round ended first.
const NoCell = -1

// TurnResult is what a single human turn produced.
type TurnResult struct {
	Game         *Game  `json:"game"`
	HumanCell    int    `json:"human_cell"`
	ComputerCell int    `json:"computer_cell"`
	Result       Result `json:"result"`
}

func (that *TurnResult) ComputerMoved() bool {
	return that.ComputerCell != NoCell
}
