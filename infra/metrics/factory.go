package metrics

import (
	"github.com/kilianp07/ersim/core/factory"
	coremetrics "github.com/kilianp07/ersim/core/metrics"
)

// DefaultNamespace prefixes Prometheus metric names.
const DefaultNamespace = "ersim"

// init registers built-in metrics sinks.
func init() {
	_ = coremetrics.RegisterMetricsSink("nop", func(map[string]any) (coremetrics.MetricsSink, error) {
		return coremetrics.NopSink{}, nil
	})

	_ = coremetrics.RegisterMetricsSink("stats", func(map[string]any) (coremetrics.MetricsSink, error) {
		return NewStatsSink(), nil
	})

	_ = coremetrics.RegisterMetricsSink("prometheus", func(conf map[string]any) (coremetrics.MetricsSink, error) {
		var c struct {
			Namespace string `json:"namespace"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.Namespace == "" {
			c.Namespace = DefaultNamespace
		}
		return NewPromSink(c.Namespace)
	})
}
