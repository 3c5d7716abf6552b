// Package random provides the randomness source used for incident generation
// and dispatch miss checks.
package random

import (
	"math/rand"
	"time"
)

// Source is the randomness provider of the simulation.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// New returns a Source backed by math/rand. A zero seed seeds from the clock.
func New(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Sequence replays a fixed list of draws. Each value is reduced modulo n and
// the list wraps around when exhausted.
type Sequence struct {
	values []int
	calls  int
}

// NewSequence returns a Sequence replaying values.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: append([]int(nil), values...)}
}

// Intn implements Source.
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("random: Intn called with non-positive n")
	}
	if len(s.values) == 0 {
		s.calls++
		return 0
	}
	v := s.values[s.calls%len(s.values)]
	s.calls++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Calls reports how many draws have been made.
func (s *Sequence) Calls() int { return s.calls }
