package dispatch

import (
	"testing"

	"github.com/kilianp07/ersim/core/console"
	"github.com/kilianp07/ersim/core/model"
	"github.com/kilianp07/ersim/core/unit"
)

func TestFindHandlerUnit_DefaultRoster(t *testing.T) {
	roster := unit.DefaultRoster()
	cases := []struct {
		typ  string
		want string
	}{
		{"Crime", "Police Unit"},
		{"crime", "Police Unit"},
		{"Fire", "Fire Engine"},
		{"FIRE", "Fire Engine"},
		{"Medical", "Ambulance"},
		{"medical", "Ambulance"},
	}
	for _, c := range cases {
		u, ok := FindHandlerUnit(model.NewIncident(c.typ, "Downtown"), roster)
		if !ok {
			t.Fatalf("no handler for %s", c.typ)
		}
		if u.Name() != c.want {
			t.Errorf("%s: expected %s got %s", c.typ, c.want, u.Name())
		}
	}
}

// Every known type has exactly one capable unit in the default roster.
func TestFindHandlerUnit_Total(t *testing.T) {
	roster := unit.DefaultRoster()
	for _, typ := range model.IncidentTypes() {
		capable := 0
		for _, u := range roster.Units() {
			if u.CanHandle(typ) {
				capable++
			}
		}
		if capable != 1 {
			t.Fatalf("%s: expected exactly one capable unit, got %d", typ, capable)
		}
	}
}

func TestFindHandlerUnit_Unknown(t *testing.T) {
	roster := unit.DefaultRoster()
	for _, typ := range []string{"Flood", "", "Fires", "Crime "} {
		if u, ok := FindHandlerUnit(model.NewIncident(typ, "Suburb"), roster); ok || u != nil {
			t.Errorf("%q: expected no handler got %v", typ, u)
		}
	}
}

type stubUnit struct {
	name, specialty string
}

func (s stubUnit) Name() string                             { return s.name }
func (s stubUnit) Speed() int                               { return 0 }
func (s stubUnit) Specialty() string                        { return s.specialty }
func (s stubUnit) CanHandle(t string) bool                  { return t == s.specialty }
func (s stubUnit) RespondToIncident(console.Output, model.Incident) {}

func TestFindHandlerUnit_FirstMatchWins(t *testing.T) {
	roster := unit.NewRoster(
		stubUnit{name: "first", specialty: "Fire"},
		stubUnit{name: "second", specialty: "Fire"},
	)
	u, ok := FirstMatchDispatcher{}.FindHandler(model.NewIncident("Fire", "Uptown"), roster)
	if !ok || u.Name() != "first" {
		t.Fatalf("expected first unit, got %v", u)
	}
}
