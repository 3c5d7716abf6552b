package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/kilianp07/ersim/config"
	coreconsole "github.com/kilianp07/ersim/core/console"
	"github.com/kilianp07/ersim/core/dispatch"
	"github.com/kilianp07/ersim/core/incident"
	coremetrics "github.com/kilianp07/ersim/core/metrics"
	"github.com/kilianp07/ersim/core/random"
	"github.com/kilianp07/ersim/core/sim"
	"github.com/kilianp07/ersim/core/unit"
	"github.com/kilianp07/ersim/infra/console"
	"github.com/kilianp07/ersim/infra/logger"
	"github.com/kilianp07/ersim/infra/metrics"
	"github.com/kilianp07/ersim/internal/eventbus"
)

// Service wires the simulation from a configuration.
type Service struct {
	Sim  *sim.Simulation
	Sink coremetrics.MetricsSink

	bus           eventbus.EventBus
	stopCollector func()
	log           logger.Logger
	metricsOut    io.Writer
}

type options struct {
	in         coreconsole.Input
	out        coreconsole.Output
	rng        random.Source
	pauser     coreconsole.Pauser
	logOut     io.Writer
	metricsOut io.Writer
}

// Option customises a Service.
type Option func(*options)

// WithInput replaces the operator input (stdin by default).
func WithInput(in coreconsole.Input) Option { return func(o *options) { o.in = in } }

// WithOutput replaces the transcript output (stdout by default).
func WithOutput(out coreconsole.Output) Option { return func(o *options) { o.out = out } }

// WithSource replaces the random source built from the configured seed.
func WithSource(rng random.Source) Option { return func(o *options) { o.rng = rng } }

// WithPauser replaces the pacing implementation.
func WithPauser(p coreconsole.Pauser) Option { return func(o *options) { o.pauser = p } }

// WithLogOutput sends diagnostic logs to w (stderr by default).
func WithLogOutput(w io.Writer) Option { return func(o *options) { o.logOut = w } }

// WithMetricsDump writes the Prometheus metrics to w once the run is over.
func WithMetricsDump(w io.Writer) Option { return func(o *options) { o.metricsOut = w } }

// New creates a Service from the configuration.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	o := options{logOut: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}
	if err := logger.Setup(cfg.Logging.Level, cfg.Logging.Format, o.logOut); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	logg := logger.New("service")

	if o.in == nil {
		o.in = console.NewReader(os.Stdin)
	}
	if o.out == nil {
		o.out = console.NewWriter(os.Stdout)
	}
	if o.rng == nil {
		o.rng = random.New(cfg.Simulation.Seed)
	}
	if o.pauser == nil {
		o.pauser = console.SleepPauser{}
		if cfg.Simulation.NoDelay {
			o.pauser = console.NopPauser{}
		}
	}

	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	bus := eventbus.New()
	stop := metrics.StartEventCollector(bus, sink, logger.New("metrics"))

	manager, err := dispatch.NewDispatchManager(
		dispatch.FirstMatchDispatcher{},
		unit.DefaultRoster(),
		o.rng,
		cfg.Simulation.MissChanceDenominator,
		o.out,
		sink,
		bus,
		logger.New("dispatch"),
	)
	if err != nil {
		stop()
		return nil, fmt.Errorf("dispatch manager: %w", err)
	}
	gen, err := incident.NewGenerator(o.rng, o.in, o.out, logger.New("incident"))
	if err != nil {
		stop()
		return nil, fmt.Errorf("incident generator: %w", err)
	}

	deps := sim.Deps{
		Manager:   manager,
		Generator: gen,
		Input:     o.in,
		Output:    o.out,
		Pauser:    o.pauser,
		Bus:       bus,
		Logger:    logger.New("sim"),
	}
	if s, ok := coremetrics.FindSummarizer(sink); ok {
		deps.Stats = s
	}
	simulation, err := sim.New(sim.Options{
		Rounds:        cfg.Simulation.Rounds,
		BatchSize:     cfg.Simulation.RandomBatchSize,
		IncidentPause: cfg.Simulation.IncidentPause(),
		RoundPause:    cfg.Simulation.RoundPause(),
	}, deps)
	if err != nil {
		stop()
		return nil, fmt.Errorf("simulation: %w", err)
	}

	return &Service{
		Sim:           simulation,
		Sink:          sink,
		bus:           bus,
		stopCollector: stop,
		log:           logg,
		metricsOut:    o.metricsOut,
	}, nil
}

// Run plays the simulation until every round is done.
func (s *Service) Run(ctx context.Context) (sim.Result, error) {
	s.log.Debugf("starting simulation")
	res := s.Sim.Run(ctx)
	if s.metricsOut != nil {
		if err := metrics.WriteText(s.metricsOut, nil); err != nil {
			return res, fmt.Errorf("dump metrics: %w", err)
		}
	}
	return res, ctx.Err()
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.stopCollector()
	s.bus.Close()
	return nil
}
