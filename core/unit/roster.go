package unit

// Roster is an ordered, read-only list of units.
type Roster struct {
	units []Unit
}

// NewRoster returns a roster holding units in the given order.
func NewRoster(units ...Unit) Roster {
	return Roster{units: append([]Unit(nil), units...)}
}

// DefaultRoster returns one unit of each variant: Police, Firefighter,
// Ambulance.
func DefaultRoster() Roster {
	return NewRoster(NewPolice(), NewFirefighter(), NewAmbulance())
}

// Units returns a copy of the units in roster order.
func (r Roster) Units() []Unit {
	return append([]Unit(nil), r.units...)
}

// Len returns the number of units.
func (r Roster) Len() int { return len(r.units) }

// Names returns the unit names in roster order.
func (r Roster) Names() []string {
	names := make([]string, len(r.units))
	for i, u := range r.units {
		names[i] = u.Name()
	}
	return names
}
