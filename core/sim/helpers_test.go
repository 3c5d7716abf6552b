package sim

import (
	"github.com/kilianp07/ersim/core/console"
	"github.com/kilianp07/ersim/core/incident"
	"github.com/kilianp07/ersim/core/random"
)

func incidentGenerator(rng random.Source, in console.Input, out console.Output) (*incident.Generator, error) {
	return incident.NewGenerator(rng, in, out, nil)
}
