package metrics

// MultiSink fans out records to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordDispatch forwards the record to all sinks, returning the first error encountered.
func (m *MultiSink) RecordDispatch(rec DispatchRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordDispatch(rec); err != nil {
			return err
		}
	}
	return nil
}

// RecordRound forwards round summaries when supported by the sink.
func (m *MultiSink) RecordRound(sum RoundSummary) error {
	for _, s := range m.Sinks {
		if rr, ok := s.(RoundRecorder); ok {
			if err := rr.RecordRound(sum); err != nil {
				return err
			}
		}
	}
	return nil
}

// Summarizer returns the first sink able to summarize the run.
func (m *MultiSink) Summarizer() (Summarizer, bool) {
	for _, s := range m.Sinks {
		if sum, ok := s.(Summarizer); ok {
			return sum, true
		}
	}
	return nil, false
}

// FindSummarizer returns s itself or, for a MultiSink, the first nested sink
// implementing Summarizer.
func FindSummarizer(s MetricsSink) (Summarizer, bool) {
	if sum, ok := s.(Summarizer); ok {
		return sum, true
	}
	if m, ok := s.(*MultiSink); ok {
		return m.Summarizer()
	}
	return nil, false
}
