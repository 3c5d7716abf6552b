package metrics_test

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/kilianp07/ersim/core/metrics"
	"github.com/kilianp07/ersim/core/score"
	"github.com/kilianp07/ersim/infra/metrics"
)

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	sink, err := metrics.NewPromSinkWithRegistry("dump", reg)
	require.NoError(t, err)
	require.NoError(t, sink.RecordDispatch(coremetrics.DispatchRecord{IncidentType: "Fire", Outcome: score.OutcomeHandled, Points: 10}))
	require.NoError(t, sink.RecordRound(coremetrics.RoundSummary{Round: 1, Incidents: 1, Delta: 10, Score: 10}))

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, reg))

	out := buf.String()
	assert.Contains(t, out, `dump_dispatch_outcomes_total{incident_type="Fire",outcome="handled"} 1`)
	assert.Contains(t, out, "dump_score 10")
	assert.NotContains(t, out, "go_goroutines")
}
