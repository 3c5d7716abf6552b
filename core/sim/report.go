package sim

import (
	"strings"
)

func (s *Simulation) printBanner() {
	s.out.Println("--- Emergency Response Simulation Starting ---")
	s.out.Printf("Available Units: %s\n", strings.Join(s.manager.Roster().Names(), ", "))
	s.out.Printf("Simulation will run for %d rounds.\n", s.opts.Rounds)
	s.out.Printf("There is a 1 in %d chance a unit might fail to respond even if available.\n\n", s.manager.MissChanceDenominator())
}

func (s *Simulation) printSummary(res Result) {
	s.out.Println("--- Simulation Ended ---")
	s.out.Printf("Final Score: %d\n", res.FinalScore)
	s.out.Printf("Incidents: %d handled, %d missed, %d unhandled\n", res.Handled, res.Missed, res.Unhandled)
	if s.stats != nil {
		if sum := s.stats.Summary(); sum.Rounds > 1 {
			s.out.Printf("Round scores: mean %+.1f, std dev %.1f (best round %d, worst round %d)\n",
				sum.MeanDelta, sum.StdDevDelta, sum.BestRound, sum.WorstRound)
		}
	}
	s.out.Println("Press any key to exit.")
}
