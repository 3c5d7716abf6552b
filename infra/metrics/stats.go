package metrics

import (
	"sync"

	"gonum.org/v1/gonum/stat"

	coremetrics "github.com/kilianp07/ersim/core/metrics"
	"github.com/kilianp07/ersim/core/score"
)

// StatsSink keeps the outcomes and round deltas of a run in memory and
// summarizes them.
type StatsSink struct {
	mu       sync.Mutex
	outcomes map[score.Outcome]int
	deltas   []float64
	rounds   []int
}

// NewStatsSink returns an empty StatsSink.
func NewStatsSink() *StatsSink {
	return &StatsSink{outcomes: make(map[score.Outcome]int)}
}

// RecordDispatch counts the outcome.
func (s *StatsSink) RecordDispatch(rec coremetrics.DispatchRecord) error {
	s.mu.Lock()
	s.outcomes[rec.Outcome]++
	s.mu.Unlock()
	return nil
}

// RecordRound stores the round delta.
func (s *StatsSink) RecordRound(sum coremetrics.RoundSummary) error {
	s.mu.Lock()
	s.deltas = append(s.deltas, float64(sum.Delta))
	s.rounds = append(s.rounds, sum.Round)
	s.mu.Unlock()
	return nil
}

// Summary implements coremetrics.Summarizer. BestRound and WorstRound are the
// first rounds reaching the highest and lowest delta, zero without rounds.
func (s *StatsSink) Summary() coremetrics.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := coremetrics.Summary{
		Rounds:   len(s.deltas),
		Outcomes: make(map[score.Outcome]int, len(s.outcomes)),
	}
	for o, n := range s.outcomes {
		sum.Outcomes[o] = n
		sum.Dispatches += n
	}
	if len(s.deltas) == 0 {
		return sum
	}
	if len(s.deltas) == 1 {
		sum.MeanDelta = s.deltas[0]
	} else {
		sum.MeanDelta, sum.StdDevDelta = stat.MeanStdDev(s.deltas, nil)
	}
	best, worst := 0, 0
	for i, d := range s.deltas {
		if d > s.deltas[best] {
			best = i
		}
		if d < s.deltas[worst] {
			worst = i
		}
	}
	sum.BestRound = s.rounds[best]
	sum.WorstRound = s.rounds[worst]
	return sum
}
