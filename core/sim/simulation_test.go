package sim

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreconsole "github.com/kilianp07/ersim/core/console"
	"github.com/kilianp07/ersim/core/dispatch"
	"github.com/kilianp07/ersim/core/events"
	coremetrics "github.com/kilianp07/ersim/core/metrics"
	"github.com/kilianp07/ersim/core/random"
	"github.com/kilianp07/ersim/core/unit"
	"github.com/kilianp07/ersim/infra/console"
	"github.com/kilianp07/ersim/internal/eventbus"
)

// allHandled draws five incidents then five successful miss checks.
var allHandled = []int{0, 0, 1, 1, 2, 2, 0, 3, 1, 4, 5, 5, 5, 5, 5}

type fixture struct {
	sim *Simulation
	out *bytes.Buffer
	rng random.Source
	bus eventbus.EventBus
}

func newFixture(t *testing.T, opts Options, rng random.Source, stats coremetrics.Summarizer, lines ...string) *fixture {
	t.Helper()
	return newPacedFixture(t, opts, rng, stats, nil, lines...)
}

func newPacedFixture(t *testing.T, opts Options, rng random.Source, stats coremetrics.Summarizer, pauser coreconsole.Pauser, lines ...string) *fixture {
	t.Helper()
	var out bytes.Buffer
	w := console.NewWriter(&out)
	in := console.NewScript(lines...)
	bus := eventbus.New()
	t.Cleanup(bus.Close)

	mgr, err := dispatch.NewDispatchManager(dispatch.FirstMatchDispatcher{}, unit.DefaultRoster(), rng, 0, w, nil, bus, nil)
	require.NoError(t, err)
	gen, err := incidentGenerator(rng, in, w)
	require.NoError(t, err)
	s, err := New(opts, Deps{Manager: mgr, Generator: gen, Input: in, Output: w, Pauser: pauser, Bus: bus, Stats: stats})
	require.NoError(t, err)
	return &fixture{sim: s, out: &out, rng: rng, bus: bus}
}

func TestRun_AllHandled(t *testing.T) {
	f := newFixture(t, Options{Rounds: 1}, random.NewSequence(allHandled...), nil, "1")
	res := f.sim.Run(context.Background())

	assert.Equal(t, 50, res.FinalScore)
	assert.Equal(t, 5, res.Handled)
	assert.Zero(t, res.Missed)
	require.Len(t, res.Rounds, 1)
	assert.Equal(t, RoundResult{Round: 1, Incidents: 5, Delta: 50, Score: 50}, res.Rounds[0])
	assert.Equal(t, StateFinished, f.sim.State())

	out := f.out.String()
	assert.Contains(t, out, "--- Emergency Response Simulation Starting ---\n")
	assert.Contains(t, out, "Available Units: Police Unit, Fire Engine, Ambulance\n")
	assert.Contains(t, out, "There is a 1 in 10 chance a unit might fail to respond even if available.\n")
	assert.Contains(t, out, "Generating 5 random incidents...\n")
	assert.Contains(t, out, "Processing 5 incident(s) for Round 1:\n")
	assert.Contains(t, out, "\nProcessing Incident 1/5: Fire incident at Downtown\n")
	assert.Contains(t, out, "\nProcessing Incident 5/5: Crime incident at City Park\n")
	assert.Contains(t, out, "Current Score: 50\n")
	assert.Contains(t, out, "Final Score: 50\n")
	assert.True(t, strings.HasSuffix(out, "Press any key to exit.\n"))
}

func TestRun_OneMiss(t *testing.T) {
	draws := append([]int(nil), allHandled...)
	draws[12] = 0
	f := newFixture(t, Options{Rounds: 1}, random.NewSequence(draws...), nil, "1")
	res := f.sim.Run(context.Background())

	assert.Equal(t, 35, res.FinalScore)
	assert.Equal(t, 4, res.Handled)
	assert.Equal(t, 1, res.Missed)
	assert.Contains(t, f.out.String(), "Ambulance was available but FAILED to respond to the dispatch!")
}

func TestRun_CustomIncident(t *testing.T) {
	rng := random.NewSequence(0)
	f := newFixture(t, Options{Rounds: 1}, rng, nil, "2", "flood", "medical", "Uptown")
	res := f.sim.Run(context.Background())

	assert.Equal(t, -5, res.FinalScore)
	assert.Equal(t, 1, res.Missed)
	assert.Equal(t, 1, rng.Calls())
	out := f.out.String()
	assert.Contains(t, out, "Entering 1 custom incident...\n")
	assert.Contains(t, out, "Invalid incident type.")
	assert.Contains(t, out, "Processing Incident 1/1: Medical incident at Uptown\n")
}

func TestRun_InvalidChoiceFallsBackToRandom(t *testing.T) {
	f := newFixture(t, Options{Rounds: 1}, random.NewSequence(allHandled...), nil, "x")
	res := f.sim.Run(context.Background())

	assert.Equal(t, 50, res.FinalScore)
	assert.Contains(t, f.out.String(), "Invalid choice. Generating 5 random incidents by default...\n")
}

func TestRun_ClosedInputDuringCustom(t *testing.T) {
	f := newFixture(t, Options{Rounds: 1}, random.NewSequence(allHandled...), nil, "2")
	res := f.sim.Run(context.Background())

	assert.Equal(t, 50, res.FinalScore)
	assert.Equal(t, 5, res.Rounds[0].Incidents)
	assert.Contains(t, f.out.String(), "Input closed. Generating 5 random incidents instead...")
}

func TestRun_SeededIsDeterministic(t *testing.T) {
	run := func() Result {
		f := newFixture(t, Options{}, random.New(42), nil)
		return f.sim.Run(context.Background())
	}
	first := run()
	second := run()

	assert.Equal(t, first, second)
	assert.Len(t, first.Rounds, DefaultRounds)
	assert.Equal(t, 25, first.Handled+first.Missed)
	assert.Zero(t, first.Unhandled)
	assert.Equal(t, first.Handled*10-first.Missed*5, first.FinalScore)
	assert.Equal(t, 205, first.FinalScore)
	assert.Equal(t, 22, first.Handled)
	assert.Equal(t, 3, first.Missed)
}

func TestRun_StateTransitions(t *testing.T) {
	f := newFixture(t, Options{Rounds: 1, BatchSize: 2}, random.NewSequence(0, 0, 1, 1, 5, 5), nil, "1")
	var got []State
	f.sim.OnStateChange(func(tr Transition) { got = append(got, tr.To) })
	f.sim.Run(context.Background())

	assert.Equal(t, []State{
		StateAwaitingChoice,
		StateGeneratingIncidents,
		StateProcessingIncident,
		StateProcessingIncident,
		StateRoundComplete,
		StateFinished,
	}, got)
}

func TestRun_PublishesRoundEvents(t *testing.T) {
	f := newFixture(t, Options{Rounds: 2, BatchSize: 1}, random.NewSequence(0, 0, 5, 1, 1, 0), nil, "1", "1")
	var rounds []events.RoundCompletedEvent
	var done []events.SimulationCompletedEvent
	unsub := f.bus.Subscribe(func(e eventbus.Event) {
		switch ev := e.(type) {
		case events.RoundCompletedEvent:
			rounds = append(rounds, ev)
		case events.SimulationCompletedEvent:
			done = append(done, ev)
		}
	})
	defer unsub()

	f.sim.Run(context.Background())

	assert.Equal(t, []events.RoundCompletedEvent{
		{Round: 1, Incidents: 1, Delta: 10, Score: 10},
		{Round: 2, Incidents: 1, Delta: -5, Score: 5},
	}, rounds)
	assert.Equal(t, []events.SimulationCompletedEvent{{Rounds: 2, FinalScore: 5}}, done)
}

type fixedSummary coremetrics.Summary

func (f fixedSummary) Summary() coremetrics.Summary { return coremetrics.Summary(f) }

func TestRun_PrintsRoundStatistics(t *testing.T) {
	stats := fixedSummary{Rounds: 2, MeanDelta: 2.5, StdDevDelta: 10.6, BestRound: 1, WorstRound: 2}
	f := newFixture(t, Options{Rounds: 2, BatchSize: 1}, random.NewSequence(0, 0, 5, 1, 1, 0), stats)
	f.sim.Run(context.Background())

	assert.Contains(t, f.out.String(), "Round scores: mean +2.5, std dev 10.6 (best round 1, worst round 2)\n")
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Options{Rounds: -1}, Deps{})
	assert.Error(t, err)

	_, err = New(Options{}, Deps{})
	assert.Error(t, err)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "awaiting_choice", StateAwaitingChoice.String())
	assert.Equal(t, "finished", StateFinished.String())
	assert.Equal(t, "unknown", State(42).String())
}

type recordingPauser struct {
	pauses []time.Duration
}

func (p *recordingPauser) Pause(_ context.Context, d time.Duration) {
	p.pauses = append(p.pauses, d)
}

func TestRun_Pacing(t *testing.T) {
	pauser := &recordingPauser{}
	opts := Options{Rounds: 2, IncidentPause: DefaultIncidentPause, RoundPause: DefaultRoundPause}
	// round 1 is a single custom incident, round 2 a random batch of five
	f := newPacedFixture(t, opts, random.NewSequence(5), nil, pauser, "2", "Fire", "Downtown", "1")
	res := f.sim.Run(context.Background())

	require.Len(t, res.Rounds, 2)
	assert.Equal(t, 1, res.Rounds[0].Incidents)
	assert.Equal(t, 5, res.Rounds[1].Incidents)
	assert.Equal(t, []time.Duration{
		DefaultRoundPause,
		DefaultIncidentPause, DefaultIncidentPause, DefaultIncidentPause, DefaultIncidentPause, DefaultIncidentPause,
		DefaultRoundPause,
	}, pauser.pauses)
}
