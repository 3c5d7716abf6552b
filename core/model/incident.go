package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Incident types handled by the default roster.
const (
	IncidentFire    = "Fire"
	IncidentCrime   = "Crime"
	IncidentMedical = "Medical"
)

// Incident is a reported event requiring a response. Incidents are values and
// are never modified after creation.
type Incident struct {
	ID       string // correlation only, never used for dispatch
	Type     string
	Location string
}

// NewIncident creates an incident. No validation is performed on the type or
// location.
func NewIncident(incidentType, location string) Incident {
	return Incident{ID: uuid.NewString(), Type: incidentType, Location: location}
}

// String returns a human-readable representation of the incident.
func (i Incident) String() string {
	return fmt.Sprintf("%s incident at %s", i.Type, i.Location)
}

// IncidentTypes returns the known incident types in draw order.
func IncidentTypes() []string {
	return []string{IncidentFire, IncidentCrime, IncidentMedical}
}

// NormalizeIncidentType matches s case-insensitively against the known
// incident types and returns the canonical spelling.
func NormalizeIncidentType(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, t := range IncidentTypes() {
		if strings.EqualFold(s, t) {
			return t, true
		}
	}
	return "", false
}
