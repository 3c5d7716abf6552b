package dispatch

import (
	"fmt"

	"github.com/kilianp07/ersim/core/console"
	"github.com/kilianp07/ersim/core/events"
	"github.com/kilianp07/ersim/core/logger"
	"github.com/kilianp07/ersim/core/metrics"
	"github.com/kilianp07/ersim/core/model"
	"github.com/kilianp07/ersim/core/random"
	"github.com/kilianp07/ersim/core/score"
	"github.com/kilianp07/ersim/core/unit"
	"github.com/kilianp07/ersim/internal/eventbus"
)

// DefaultMissChanceDenominator gives a 1 in 10 chance for a capable unit to
// miss its dispatch.
const DefaultMissChanceDenominator = 10

// DispatchResult is the outcome of dispatching one incident. Unit is nil when
// no unit could handle the incident.
type DispatchResult struct {
	Incident model.Incident
	Unit     unit.Unit
	Outcome  score.Outcome
	Points   int
}

// DispatchManager matches incidents to units, applies the miss chance and
// reports the outcome. It does not keep the score; callers apply
// DispatchResult.Outcome to their own board.
type DispatchManager struct {
	dispatcher Dispatcher
	roster     unit.Roster
	rng        random.Source
	missChance int
	out        console.Output
	logger     logger.Logger
	metrics    metrics.MetricsSink
	bus        eventbus.EventBus
}

// NewDispatchManager creates a new manager.
// missChance is the denominator of the miss probability; zero selects
// DefaultMissChanceDenominator. sink, bus and log may be nil.
func NewDispatchManager(dispatcher Dispatcher, roster unit.Roster, rng random.Source, missChance int, out console.Output, sink metrics.MetricsSink, bus eventbus.EventBus, log logger.Logger) (*DispatchManager, error) {
	if dispatcher == nil || rng == nil || out == nil {
		return nil, fmt.Errorf("dispatch: nil parameter provided to NewDispatchManager")
	}
	if roster.Len() == 0 {
		return nil, fmt.Errorf("dispatch: empty roster")
	}
	if missChance < 0 {
		return nil, fmt.Errorf("dispatch: negative miss chance denominator %d", missChance)
	}
	if missChance == 0 {
		missChance = DefaultMissChanceDenominator
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &DispatchManager{
		dispatcher: dispatcher,
		roster:     roster,
		rng:        rng,
		missChance: missChance,
		out:        out,
		logger:     logger.OrNop(log),
		metrics:    sink,
		bus:        bus,
	}, nil
}

// MissChanceDenominator returns n for the 1 in n miss chance.
func (m *DispatchManager) MissChanceDenominator() int { return m.missChance }

// Roster returns the roster units are dispatched from.
func (m *DispatchManager) Roster() unit.Roster { return m.roster }

// Dispatch runs the dispatch process for one incident. A random draw is only
// made when a capable unit exists.
func (m *DispatchManager) Dispatch(inc model.Incident) DispatchResult {
	res := DispatchResult{Incident: inc}
	handler, ok := m.dispatcher.FindHandler(inc, m.roster)
	switch {
	case !ok:
		res.Outcome = score.OutcomeUnhandled
		unhandledIncidents.WithLabelValues(inc.Type).Inc()
		m.out.Printf("  -> No available unit can handle a %s incident!\n", inc.Type)
		m.out.Printf("  Incident could not be handled. %+d points.\n", res.Outcome.Points())
	case m.missed():
		res.Unit = handler
		res.Outcome = score.OutcomeMissed
		m.out.Printf("  -> %s was available but FAILED to respond to the dispatch!\n", handler.Name())
		m.out.Printf("  Missed response! %+d points.\n", res.Outcome.Points())
	default:
		res.Unit = handler
		res.Outcome = score.OutcomeHandled
		handler.RespondToIncident(m.out, inc)
		m.out.Printf("  Incident handled correctly! %+d points.\n", res.Outcome.Points())
	}
	res.Points = res.Outcome.Points()

	unitName := ""
	if res.Unit != nil {
		unitName = res.Unit.Name()
		unitsDispatched.WithLabelValues(unitName, res.Outcome.String()).Inc()
	}
	m.logger.Debugw("incident dispatched", map[string]any{
		"incident_id": inc.ID,
		"type":        inc.Type,
		"location":    inc.Location,
		"unit":        unitName,
		"outcome":     res.Outcome.String(),
		"points":      res.Points,
	})
	if m.bus != nil {
		m.bus.Publish(events.DispatchEvent{Incident: inc, Unit: unitName, Outcome: res.Outcome, Points: res.Points})
	}
	m.recordMetrics(res, unitName)
	return res
}

// missed draws the miss chance. A zero draw is a miss.
func (m *DispatchManager) missed() bool {
	missDraws.Inc()
	return m.rng.Intn(m.missChance) == 0
}

// recordMetrics forwards the result to the configured sink.
func (m *DispatchManager) recordMetrics(res DispatchResult, unitName string) {
	err := m.metrics.RecordDispatch(metrics.DispatchRecord{
		IncidentID:   res.Incident.ID,
		IncidentType: res.Incident.Type,
		Location:     res.Incident.Location,
		Unit:         unitName,
		Outcome:      res.Outcome,
		Points:       res.Points,
	})
	if err != nil {
		m.logger.Errorf("metrics error: %v", err)
	}
}
