package events

// RoundStartedEvent is published once the incidents of a round are generated.
// Mode is "random" or "custom".
type RoundStartedEvent struct {
	Round     int
	Mode      string
	Incidents int
}

// RoundCompletedEvent is published after the last incident of a round.
type RoundCompletedEvent struct {
	Round     int
	Incidents int
	Delta     int
	Score     int
}

// SimulationCompletedEvent is published after the last round.
type SimulationCompletedEvent struct {
	Rounds     int
	FinalScore int
}
