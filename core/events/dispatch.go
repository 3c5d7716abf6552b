package events

import (
	"github.com/kilianp07/ersim/core/model"
	"github.com/kilianp07/ersim/core/score"
)

// DispatchEvent is published once per processed incident. Unit is empty when
// no unit could handle the incident.
type DispatchEvent struct {
	Incident model.Incident
	Unit     string
	Outcome  score.Outcome
	Points   int
}
