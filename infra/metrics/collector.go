package metrics

import (
	"github.com/kilianp07/ersim/core/events"
	"github.com/kilianp07/ersim/core/logger"
	coremetrics "github.com/kilianp07/ersim/core/metrics"
	"github.com/kilianp07/ersim/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and records round
// summaries on sinks implementing RoundRecorder. The returned function stops
// the collector.
func StartEventCollector(bus eventbus.EventBus, sink coremetrics.MetricsSink, log logger.Logger) func() {
	if bus == nil || sink == nil {
		return func() {}
	}
	rr, ok := sink.(coremetrics.RoundRecorder)
	if !ok {
		return func() {}
	}
	log = logger.OrNop(log)
	return bus.Subscribe(func(ev eventbus.Event) {
		e, ok := ev.(events.RoundCompletedEvent)
		if !ok {
			return
		}
		err := rr.RecordRound(coremetrics.RoundSummary{
			Round:     e.Round,
			Incidents: e.Incidents,
			Delta:     e.Delta,
			Score:     e.Score,
		})
		if err != nil {
			log.Errorf("round metrics error: %v", err)
		}
	})
}
