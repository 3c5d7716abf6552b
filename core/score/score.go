// Package score defines dispatch outcomes and the running scoreboard.
package score

// Outcome is the result of dispatching a single incident.
type Outcome int

const (
	OutcomeHandled Outcome = iota
	OutcomeMissed
	OutcomeUnhandled
)

// Points awarded per outcome.
const (
	HandledPoints    = 10
	MissedPenalty    = -5
	UnhandledPenalty = -5
)

// Outcomes lists all outcomes in declaration order.
func Outcomes() []Outcome {
	return []Outcome{OutcomeHandled, OutcomeMissed, OutcomeUnhandled}
}

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeHandled:
		return "handled"
	case OutcomeMissed:
		return "missed"
	case OutcomeUnhandled:
		return "unhandled"
	default:
		return "unknown"
	}
}

// Points returns the score contribution of the outcome.
func (o Outcome) Points() int {
	switch o {
	case OutcomeHandled:
		return HandledPoints
	case OutcomeMissed:
		return MissedPenalty
	case OutcomeUnhandled:
		return UnhandledPenalty
	default:
		return 0
	}
}

// Board accumulates the score across rounds. The zero value is ready to use.
type Board struct {
	total  int
	counts [3]int
}

// Apply adds the outcome's points and returns the new total.
func (b *Board) Apply(o Outcome) int {
	if o >= OutcomeHandled && o <= OutcomeUnhandled {
		b.counts[o]++
	}
	b.total += o.Points()
	return b.total
}

// Total returns the current score.
func (b *Board) Total() int { return b.total }

// Count returns how many incidents ended with o.
func (b *Board) Count(o Outcome) int {
	if o < OutcomeHandled || o > OutcomeUnhandled {
		return 0
	}
	return b.counts[o]
}

// Incidents returns the number of scored incidents.
func (b *Board) Incidents() int {
	return b.counts[0] + b.counts[1] + b.counts[2]
}

// Reset clears the board.
func (b *Board) Reset() { *b = Board{} }
