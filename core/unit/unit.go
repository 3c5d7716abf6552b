// Package unit defines the emergency units that respond to incidents and the
// fixed roster they are dispatched from.
package unit

import (
	"strings"

	"github.com/kilianp07/ersim/core/console"
	"github.com/kilianp07/ersim/core/model"
)

// Unit is an emergency responder able to handle one incident type.
type Unit interface {
	Name() string
	// Speed is informational only and never used for dispatch.
	Speed() int
	Specialty() string
	// CanHandle reports whether the unit handles incidentType. Matching is
	// case-insensitive.
	CanHandle(incidentType string) bool
	// RespondToIncident describes the unit's response on out.
	RespondToIncident(out console.Output, inc model.Incident)
}

// responder carries the attributes shared by all unit variants.
type responder struct {
	name      string
	speed     int
	specialty string
	action    string
}

func (r responder) Name() string      { return r.name }
func (r responder) Speed() int        { return r.speed }
func (r responder) Specialty() string { return r.specialty }

func (r responder) CanHandle(incidentType string) bool {
	return strings.EqualFold(incidentType, r.specialty)
}

func (r responder) RespondToIncident(out console.Output, inc model.Incident) {
	out.Printf("  -> %s responding to %s. %s\n", r.name, inc, r.action)
}

// Police handles crime incidents.
type Police struct{ responder }

// NewPolice returns the police unit.
func NewPolice() *Police {
	return &Police{responder{name: "Police Unit", speed: 80, specialty: model.IncidentCrime, action: "Securing the area."}}
}

// Firefighter handles fire incidents.
type Firefighter struct{ responder }

// NewFirefighter returns the fire engine.
func NewFirefighter() *Firefighter {
	return &Firefighter{responder{name: "Fire Engine", speed: 60, specialty: model.IncidentFire, action: "Extinguishing the fire."}}
}

// Ambulance handles medical incidents.
type Ambulance struct{ responder }

// NewAmbulance returns the ambulance.
func NewAmbulance() *Ambulance {
	return &Ambulance{responder{name: "Ambulance", speed: 70, specialty: model.IncidentMedical, action: "Providing medical assistance."}}
}
