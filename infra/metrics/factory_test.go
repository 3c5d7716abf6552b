package metrics_test

import (
	"testing"

	"github.com/kilianp07/ersim/core/factory"
	coremetrics "github.com/kilianp07/ersim/core/metrics"
	_ "github.com/kilianp07/ersim/infra/metrics"
)

/*
TestMetricsFactory_Builtins verifies registration via infra/metrics/factory.go.

	Cases:
	- builtin nop, stats and prometheus sinks
	- unknown type and unknown conf key return errors
*/
func TestMetricsFactory_Builtins(t *testing.T) {
	for _, typ := range []string{"nop", "stats"} {
		s, err := coremetrics.NewMetricsSink([]factory.ModuleConfig{{Type: typ}})
		if err != nil {
			t.Fatalf("create %s: %v", typ, err)
		}
		if s == nil {
			t.Fatalf("expected %s sink instance", typ)
		}
	}
	if _, err := coremetrics.NewMetricsSink([]factory.ModuleConfig{{Type: "missing"}}); err == nil {
		t.Fatal("expected error for unknown type")
	}
	if _, err := coremetrics.NewMetricsSink([]factory.ModuleConfig{{Type: "prometheus", Conf: map[string]any{"port": 9090}}}); err == nil {
		t.Fatal("expected error for unknown conf key")
	}
}

/*
TestNewMetricsSink_Multi validates NewMetricsSink with zero and multiple configs.
Cases:
  - no config -> NopSink
  - prometheus + stats -> MultiSink exposing the stats summarizer
*/
func TestNewMetricsSink_Multi(t *testing.T) {
	s, err := coremetrics.NewMetricsSink(nil)
	if err != nil {
		t.Fatalf("nil config: %v", err)
	}
	if _, ok := s.(coremetrics.NopSink); !ok {
		t.Fatalf("expected NopSink got %T", s)
	}

	s, err = coremetrics.NewMetricsSink([]factory.ModuleConfig{
		{Type: "prometheus", Conf: map[string]any{"namespace": "factory_test"}},
		{Type: "stats"},
	})
	if err != nil {
		t.Fatalf("multi: %v", err)
	}
	ms, ok := s.(*coremetrics.MultiSink)
	if !ok || len(ms.Sinks) != 2 {
		t.Fatalf("expected MultiSink with two sinks got %T", s)
	}
	if _, ok := coremetrics.FindSummarizer(s); !ok {
		t.Fatal("expected stats summarizer")
	}
}
