// Package incident generates the incidents processed during a round, either
// at random or from operator input.
package incident

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kilianp07/ersim/core/console"
	"github.com/kilianp07/ersim/core/logger"
	"github.com/kilianp07/ersim/core/model"
	"github.com/kilianp07/ersim/core/random"
)

const (
	// DefaultBatchSize is the number of incidents generated in random mode.
	DefaultBatchSize = 5
	// DefaultLocation replaces a blank custom location.
	DefaultLocation = "Unknown Location"
)

// ErrInputClosed is returned when operator input ends before a custom
// incident is complete.
var ErrInputClosed = errors.New("incident: input closed")

// Locations returns the locations random incidents are drawn from.
func Locations() []string {
	return []string{"Downtown", "Uptown", "Suburb", "Industrial Park", "City Park", "Main St"}
}

// Mode selects how the incidents of a round are produced.
type Mode int

const (
	ModeRandom Mode = iota
	ModeCustom
)

// String returns a human-readable representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeRandom:
		return "random"
	case ModeCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ParseMode maps the operator selector to a mode. "1" is random and "2" is
// custom. Any other input yields ModeRandom and false.
func ParseMode(choice string) (Mode, bool) {
	switch strings.TrimSpace(choice) {
	case "1":
		return ModeRandom, true
	case "2":
		return ModeCustom, true
	default:
		return ModeRandom, false
	}
}

// Generator produces incidents.
type Generator struct {
	rng    random.Source
	in     console.Input
	out    console.Output
	logger logger.Logger
}

// NewGenerator returns a Generator. in and out are only used in custom mode.
func NewGenerator(rng random.Source, in console.Input, out console.Output, log logger.Logger) (*Generator, error) {
	if rng == nil || in == nil || out == nil {
		return nil, fmt.Errorf("incident: nil parameter provided to NewGenerator")
	}
	return &Generator{rng: rng, in: in, out: out, logger: logger.OrNop(log)}, nil
}

// RandomIncident draws a type and then a location.
func (g *Generator) RandomIncident() model.Incident {
	types := model.IncidentTypes()
	locations := Locations()
	typ := types[g.rng.Intn(len(types))]
	loc := locations[g.rng.Intn(len(locations))]
	return model.NewIncident(typ, loc)
}

// Random generates n incidents, drawing them one after the other.
func (g *Generator) Random(n int) []model.Incident {
	incs := make([]model.Incident, 0, n)
	for i := 0; i < n; i++ {
		incs = append(incs, g.RandomIncident())
	}
	return incs
}

// Custom prompts the operator for one incident. The type prompt repeats until
// a known type is entered. A blank location is replaced by DefaultLocation.
func (g *Generator) Custom() (model.Incident, error) {
	allowed := strings.Join(model.IncidentTypes(), ", ")
	var typ string
	for {
		line, err := console.Prompt(g.in, g.out, fmt.Sprintf("Enter Incident Type (%s): ", allowed))
		if err != nil {
			return model.Incident{}, inputErr("incident type", err)
		}
		if t, ok := model.NormalizeIncidentType(line); ok {
			typ = t
			break
		}
		g.out.Printf("Invalid incident type. Please enter one of: %s.\n", allowed)
		g.logger.Debugf("rejected incident type %q", line)
	}

	line, err := console.Prompt(g.in, g.out, "Enter Incident Location: ")
	if err != nil && !errors.Is(err, io.EOF) {
		return model.Incident{}, inputErr("incident location", err)
	}
	location := strings.TrimSpace(line)
	if location == "" {
		location = DefaultLocation
		g.out.Printf("Location not specified, using '%s'.\n", DefaultLocation)
		g.logger.Infof("blank location replaced by %q", DefaultLocation)
	}
	return model.NewIncident(typ, location), nil
}

func inputErr(what string, err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("read %s: %w", what, ErrInputClosed)
	}
	return fmt.Errorf("read %s: %w", what, err)
}
