package metrics

import (
	"github.com/kilianp07/ersim/core/score"
)

// DispatchRecord describes one processed incident.
type DispatchRecord struct {
	IncidentID   string
	IncidentType string
	Location     string
	Unit         string // empty when unhandled
	Outcome      score.Outcome
	Points       int
}

// MetricsSink records dispatch outcomes for observability purposes.
type MetricsSink interface {
	RecordDispatch(rec DispatchRecord) error
}

// RoundSummary captures the result of a finished round.
type RoundSummary struct {
	Round     int
	Incidents int
	Delta     int
	Score     int
}

// RoundRecorder is implemented by sinks able to record round summaries.
type RoundRecorder interface {
	RecordRound(sum RoundSummary) error
}

// Summary aggregates a run. Round statistics describe the per-round score
// deltas.
type Summary struct {
	Rounds      int
	Dispatches  int
	Outcomes    map[score.Outcome]int
	MeanDelta   float64
	StdDevDelta float64
	BestRound   int
	WorstRound  int
}

// Summarizer is implemented by sinks able to aggregate a whole run.
type Summarizer interface {
	Summary() Summary
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordDispatch(DispatchRecord) error { return nil }

// Ensure NopSink implements RoundRecorder.
func (NopSink) RecordRound(RoundSummary) error { return nil }
