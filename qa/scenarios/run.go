package scenarios

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kilianp07/ersim/app"
	"github.com/kilianp07/ersim/config"
	"github.com/kilianp07/ersim/core/random"
	"github.com/kilianp07/ersim/core/sim"
	"github.com/kilianp07/ersim/infra/console"
)

// ErrExpectation reports a run whose result differs from the scenario's
// expectations.
var ErrExpectation = errors.New("scenario expectation not met")

// Run replays sc without pauses and writes the transcript to out.
func Run(sc *Scenario, out io.Writer) (sim.Result, error) {
	cfg := config.Default()
	cfg.Logging.Level = "error"
	cfg.Simulation.NoDelay = true
	cfg.Simulation.Seed = sc.Seed
	if sc.Rounds > 0 {
		cfg.Simulation.Rounds = sc.Rounds
	}
	if sc.BatchSize > 0 {
		cfg.Simulation.RandomBatchSize = sc.BatchSize
	}
	if sc.MissChanceDenominator > 0 {
		cfg.Simulation.MissChanceDenominator = sc.MissChanceDenominator
	}

	opts := []app.Option{
		app.WithInput(console.NewScript(sc.Inputs...)),
		app.WithOutput(console.NewWriter(out)),
		app.WithLogOutput(io.Discard),
	}
	if len(sc.Draws) > 0 {
		opts = append(opts, app.WithSource(random.NewSequence(sc.Draws...)))
	}
	svc, err := app.New(cfg, opts...)
	if err != nil {
		return sim.Result{}, err
	}
	defer svc.Close()

	res, err := svc.Run(context.Background())
	if err != nil {
		return res, err
	}
	return res, sc.Expected.check(res)
}

func (e Expected) check(res sim.Result) error {
	incidents := res.Handled + res.Missed + res.Unhandled
	var errs []error
	for _, c := range []struct {
		name string
		want *int
		got  int
	}{
		{"final score", e.FinalScore, res.FinalScore},
		{"handled", e.Handled, res.Handled},
		{"missed", e.Missed, res.Missed},
		{"unhandled", e.Unhandled, res.Unhandled},
		{"incidents", e.Incidents, incidents},
	} {
		if c.want != nil && *c.want != c.got {
			errs = append(errs, fmt.Errorf("%w: %s is %d, want %d", ErrExpectation, c.name, c.got, *c.want))
		}
	}
	return errors.Join(errs...)
}
