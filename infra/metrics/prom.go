package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/ersim/core/metrics"
)

// PromSink records simulation outcomes in Prometheus metrics.
type PromSink struct {
	dispatches *prometheus.CounterVec
	points     *prometheus.CounterVec
	score      prometheus.Gauge
	rounds     prometheus.Counter
	roundDelta prometheus.Histogram
}

// NewPromSink registers metrics on the default Prometheus registerer.
func NewPromSink(namespace string) (*PromSink, error) {
	return NewPromSinkWithRegistry(namespace, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// already registered under the same name are reused.
func NewPromSinkWithRegistry(namespace string, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	dispatches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dispatch_outcomes_total",
		Help:      "Number of processed incidents by type and outcome",
	}, []string{"incident_type", "outcome"})
	points := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dispatch_points_total",
		Help:      "Absolute points awarded or deducted by outcome",
	}, []string{"outcome"})
	score := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "score",
		Help:      "Running score at the end of the last completed round",
	})
	rounds := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rounds_completed_total",
		Help:      "Number of completed rounds",
	})
	roundDelta := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "round_score_delta",
		Help:      "Score change per round",
		Buckets:   prometheus.LinearBuckets(-25, 15, 6),
	})

	var err error
	if dispatches, err = register(reg, dispatches); err != nil {
		return nil, err
	}
	if points, err = register(reg, points); err != nil {
		return nil, err
	}
	if score, err = register(reg, score); err != nil {
		return nil, err
	}
	if rounds, err = register(reg, rounds); err != nil {
		return nil, err
	}
	if roundDelta, err = register(reg, roundDelta); err != nil {
		return nil, err
	}
	return &PromSink{dispatches: dispatches, points: points, score: score, rounds: rounds, roundDelta: roundDelta}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordDispatch increments the outcome counters.
func (s *PromSink) RecordDispatch(rec coremetrics.DispatchRecord) error {
	s.dispatches.WithLabelValues(rec.IncidentType, rec.Outcome.String()).Inc()
	pts := float64(rec.Points)
	if pts < 0 {
		pts = -pts
	}
	s.points.WithLabelValues(rec.Outcome.String()).Add(pts)
	return nil
}

// RecordRound updates the score gauge and round metrics.
func (s *PromSink) RecordRound(sum coremetrics.RoundSummary) error {
	s.score.Set(float64(sum.Score))
	s.rounds.Inc()
	s.roundDelta.Observe(float64(sum.Delta))
	return nil
}
