package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	unitsDispatched    *prometheus.CounterVec
	unhandledIncidents *prometheus.CounterVec
	missDraws          prometheus.Counter
)

// newCollectors creates new metric collectors.
func newCollectors() (*prometheus.CounterVec, *prometheus.CounterVec, prometheus.Counter) {
	units := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "units_dispatched_total",
			Help: "Number of dispatches per unit and outcome",
		},
		[]string{"unit", "outcome"},
	)
	unhandled := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unhandled_incidents_total",
			Help: "Number of incidents no unit could handle",
		},
		[]string{"incident_type"},
	)
	draws := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "miss_chance_draws_total",
			Help: "Number of random draws made for the miss chance",
		},
	)
	return units, unhandled, draws
}

func init() {
	unitsDispatched, unhandledIncidents, missDraws = newCollectors()
	MustRegisterMetrics(nil)
}

// MustRegisterMetrics registers dispatch metrics on the provided registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func MustRegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(unitsDispatched, unhandledIncidents, missDraws)
}

// ResetMetrics reinitializes metrics collectors for testing purposes and
// registers them on the provided registry if not nil.
func ResetMetrics(reg prometheus.Registerer) {
	unitsDispatched, unhandledIncidents, missDraws = newCollectors()
	if reg != nil {
		MustRegisterMetrics(reg)
	}
}
