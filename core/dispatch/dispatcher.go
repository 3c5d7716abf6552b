package dispatch

import (
	"github.com/kilianp07/ersim/core/model"
	"github.com/kilianp07/ersim/core/unit"
)

// Dispatcher selects the unit handling an incident.
type Dispatcher interface {
	FindHandler(inc model.Incident, roster unit.Roster) (unit.Unit, bool)
}

// FirstMatchDispatcher scans the roster in order and picks the first unit able
// to handle the incident type. Order matters once capabilities overlap.
type FirstMatchDispatcher struct{}

// FindHandler implements Dispatcher. It returns false when no unit matches.
func (FirstMatchDispatcher) FindHandler(inc model.Incident, roster unit.Roster) (unit.Unit, bool) {
	for _, u := range roster.Units() {
		if u.CanHandle(inc.Type) {
			return u, true
		}
	}
	return nil, false
}

// FindHandlerUnit is a shorthand for FirstMatchDispatcher.FindHandler.
func FindHandlerUnit(inc model.Incident, roster unit.Roster) (unit.Unit, bool) {
	return FirstMatchDispatcher{}.FindHandler(inc, roster)
}
