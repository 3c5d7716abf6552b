// Package metrics defines interfaces for collecting simulation metrics. Sinks
// record each dispatch outcome and, optionally, round summaries. Sinks like
// PromSink and StatsSink live in infra/metrics and register themselves in the
// factory registry. NewMetricsSink returns a MultiSink automatically when
// several sinks are configured.
package metrics
