package sim

// State is a step of the round state machine.
type State int

const (
	StateAwaitingChoice State = iota
	StateGeneratingIncidents
	StateProcessingIncident
	StateRoundComplete
	StateFinished
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateAwaitingChoice:
		return "awaiting_choice"
	case StateGeneratingIncidents:
		return "generating_incidents"
	case StateProcessingIncident:
		return "processing_incident"
	case StateRoundComplete:
		return "round_complete"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Transition is reported to the state hook on every state change.
type Transition struct {
	Round int
	From  State
	To    State
}
