package holdem

// Stage marks how many community cards have been revealed.
type Stage uint8

const (
	PreFlop Stage = iota
	Flop
	Turn
	River
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case PreFlop:
		return "Pre-flop"
	case Flop:
		return "Flop"
	case Turn:
		return "Turn"
	case River:
		return "River"
	default:
		return "Unknown"
	}
}

// CommunityCards is the number of shared cards visible at the stage.
func (s Stage) CommunityCards() int {
	switch s {
	case Flop:
		return 3
	case Turn:
		return 4
	case River:
		return 5
	default:
		return 0
	}
}

// Showdown is the hero's result in one trial.
type Showdown uint8

const (
	Win Showdown = iota
	Lose
	Draw
)

func (s Showdown) String() string {
	switch s {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}
