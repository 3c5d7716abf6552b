// Package sim drives the emergency response simulation: it runs the rounds,
// generates the incidents of each round, dispatches them and keeps the score.
package sim

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kilianp07/ersim/core/console"
	"github.com/kilianp07/ersim/core/dispatch"
	"github.com/kilianp07/ersim/core/events"
	"github.com/kilianp07/ersim/core/incident"
	"github.com/kilianp07/ersim/core/logger"
	"github.com/kilianp07/ersim/core/metrics"
	"github.com/kilianp07/ersim/core/model"
	"github.com/kilianp07/ersim/core/score"
	"github.com/kilianp07/ersim/internal/eventbus"
)

// Defaults used when Options leave a field to its zero value.
const (
	DefaultRounds        = 5
	DefaultIncidentPause = 500 * time.Millisecond
	DefaultRoundPause    = time.Second
)

// Options tunes the simulation.
type Options struct {
	Rounds        int
	BatchSize     int
	IncidentPause time.Duration
	RoundPause    time.Duration
}

func (o *Options) setDefaults() {
	if o.Rounds == 0 {
		o.Rounds = DefaultRounds
	}
	if o.BatchSize == 0 {
		o.BatchSize = incident.DefaultBatchSize
	}
}

// Deps holds the collaborators of a Simulation. Pauser, Bus, Stats and Logger
// are optional.
type Deps struct {
	Manager   *dispatch.DispatchManager
	Generator *incident.Generator
	Input     console.Input
	Output    console.Output
	Pauser    console.Pauser
	Bus       eventbus.EventBus
	Stats     metrics.Summarizer
	Logger    logger.Logger
}

// RoundResult describes one finished round.
type RoundResult struct {
	Round     int
	Mode      incident.Mode
	Incidents int
	Delta     int
	Score     int
}

// Result describes a finished simulation.
type Result struct {
	FinalScore int
	Rounds     []RoundResult
	Handled    int
	Missed     int
	Unhandled  int
}

// Simulation runs a fixed number of rounds. It owns the score.
type Simulation struct {
	opts    Options
	manager *dispatch.DispatchManager
	gen     *incident.Generator
	in      console.Input
	out     console.Output
	pauser  console.Pauser
	bus     eventbus.EventBus
	stats   metrics.Summarizer
	log     logger.Logger

	board   score.Board
	state   State
	onState func(Transition)
}

// New creates a Simulation.
func New(opts Options, deps Deps) (*Simulation, error) {
	opts.setDefaults()
	if opts.Rounds < 0 || opts.BatchSize < 0 {
		return nil, fmt.Errorf("sim: rounds and batch size must not be negative")
	}
	if opts.IncidentPause < 0 || opts.RoundPause < 0 {
		return nil, fmt.Errorf("sim: negative pause")
	}
	if deps.Manager == nil || deps.Generator == nil || deps.Input == nil || deps.Output == nil {
		return nil, fmt.Errorf("sim: nil parameter provided to New")
	}
	s := &Simulation{
		opts:    opts,
		manager: deps.Manager,
		gen:     deps.Generator,
		in:      deps.Input,
		out:     deps.Output,
		pauser:  deps.Pauser,
		bus:     deps.Bus,
		stats:   deps.Stats,
		log:     logger.OrNop(deps.Logger),
	}
	if s.pauser == nil {
		s.pauser = nopPauser{}
	}
	return s, nil
}

// OnStateChange registers a hook called on every state transition.
func (s *Simulation) OnStateChange(fn func(Transition)) { s.onState = fn }

// State returns the current state.
func (s *Simulation) State() State { return s.state }

// Score returns the running score.
func (s *Simulation) Score() int { return s.board.Total() }

// Run plays every round and prints the final summary. The run always
// completes; a cancelled context only shortens the pacing delays.
func (s *Simulation) Run(ctx context.Context) Result {
	s.board.Reset()
	s.state = StateAwaitingChoice
	s.printBanner()

	res := Result{Rounds: make([]RoundResult, 0, s.opts.Rounds)}
	for r := 1; r <= s.opts.Rounds; r++ {
		res.Rounds = append(res.Rounds, s.playRound(ctx, r))
	}
	s.transition(s.opts.Rounds, StateFinished)

	res.FinalScore = s.board.Total()
	res.Handled = s.board.Count(score.OutcomeHandled)
	res.Missed = s.board.Count(score.OutcomeMissed)
	res.Unhandled = s.board.Count(score.OutcomeUnhandled)
	s.publish(events.SimulationCompletedEvent{Rounds: s.opts.Rounds, FinalScore: res.FinalScore})
	s.log.Infof("simulation finished after %d rounds with score %d", s.opts.Rounds, res.FinalScore)

	s.printSummary(res)
	if err := s.in.ReadKey(); err != nil {
		s.log.Debugf("exit key: %v", err)
	}
	return res
}

func (s *Simulation) playRound(ctx context.Context, round int) RoundResult {
	s.out.Printf("--- Round %d ---\n", round)
	s.transition(round, StateAwaitingChoice)
	mode := s.chooseMode(round)

	s.transition(round, StateGeneratingIncidents)
	incs, mode := s.generate(mode)
	s.publish(events.RoundStartedEvent{Round: round, Mode: mode.String(), Incidents: len(incs)})

	start := s.board.Total()
	s.out.Printf("Processing %d incident(s) for Round %d:\n", len(incs), round)
	for i, inc := range incs {
		s.transition(round, StateProcessingIncident)
		s.out.Printf("\nProcessing Incident %d/%d: %s\n", i+1, len(incs), inc)
		res := s.manager.Dispatch(inc)
		s.board.Apply(res.Outcome)
		if len(incs) > 1 {
			s.pauser.Pause(ctx, s.opts.IncidentPause)
		}
	}

	s.transition(round, StateRoundComplete)
	rr := RoundResult{
		Round:     round,
		Mode:      mode,
		Incidents: len(incs),
		Delta:     s.board.Total() - start,
		Score:     s.board.Total(),
	}
	s.out.Printf("\n--- End of Round %d ---\n", round)
	s.out.Printf("Current Score: %d\n\n", rr.Score)
	s.publish(events.RoundCompletedEvent{Round: round, Incidents: rr.Incidents, Delta: rr.Delta, Score: rr.Score})
	s.pauser.Pause(ctx, s.opts.RoundPause)
	return rr
}

// chooseMode prompts for the generation method. Invalid input and closed
// input both fall back to random mode.
func (s *Simulation) chooseMode(round int) incident.Mode {
	s.out.Println("Choose incident generation method for this round:")
	s.out.Printf("  1. Generate %d Random Incidents\n", s.opts.BatchSize)
	s.out.Println("  2. Enter 1 Custom Incident")
	line, err := console.Prompt(s.in, s.out, "Enter choice (1 or 2): ")
	s.out.Println()
	if err != nil {
		s.log.Debugf("round %d: reading choice: %v", round, err)
	}
	mode, ok := incident.ParseMode(line)
	switch {
	case !ok:
		s.out.Printf("Invalid choice. Generating %d random incidents by default...\n", s.opts.BatchSize)
		s.log.Infof("round %d: invalid choice %q, using random incidents", round, strings.TrimSpace(line))
	case mode == incident.ModeCustom:
		s.out.Println("Entering 1 custom incident...")
	default:
		s.out.Printf("Generating %d random incidents...\n", s.opts.BatchSize)
	}
	return mode
}

// generate produces the incidents of a round. All random draws for the
// round's incidents happen here, before any miss check.
func (s *Simulation) generate(mode incident.Mode) ([]model.Incident, incident.Mode) {
	if mode == incident.ModeCustom {
		inc, err := s.gen.Custom()
		if err == nil {
			return []model.Incident{inc}, mode
		}
		if errors.Is(err, incident.ErrInputClosed) {
			s.out.Printf("\nInput closed. Generating %d random incidents instead...\n", s.opts.BatchSize)
		} else {
			s.out.Printf("\nCould not read custom incident. Generating %d random incidents instead...\n", s.opts.BatchSize)
		}
		s.log.Warnf("custom incident: %v", err)
	}
	return s.gen.Random(s.opts.BatchSize), incident.ModeRandom
}

func (s *Simulation) transition(round int, to State) {
	from := s.state
	s.state = to
	if s.onState != nil {
		s.onState(Transition{Round: round, From: from, To: to})
	}
}

func (s *Simulation) publish(e eventbus.Event) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}

type nopPauser struct{}

func (nopPauser) Pause(context.Context, time.Duration) {}
