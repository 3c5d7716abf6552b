package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/ersim/app"
	"github.com/kilianp07/ersim/config"
	"github.com/kilianp07/ersim/core/factory"
	"github.com/kilianp07/ersim/infra/console"
	"github.com/kilianp07/ersim/infra/logger"
)

var (
	cfgPath  string
	logLevel string
)

var runFlags struct {
	seed        int64
	noDelay     bool
	rounds      int
	dumpMetrics bool
}

var rootCmd = &cobra.Command{
	Use:          "ersim",
	Short:        "Emergency response dispatch simulation",
	RunE:         run,
	SilenceUsage: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play the simulation in the terminal",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")
	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().Int64Var(&runFlags.seed, "seed", 0, "seed of the random source (0 seeds from the clock)")
		c.Flags().BoolVar(&runFlags.noDelay, "no-delay", false, "disable pauses between incidents and rounds")
		c.Flags().IntVar(&runFlags.rounds, "rounds", 0, "number of rounds to play")
		c.Flags().BoolVar(&runFlags.dumpMetrics, "metrics", false, "print Prometheus metrics to stderr after the run")
	}
	rootCmd.AddCommand(runCmd)
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configuration and applies the persistent overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Simulation.Seed = runFlags.seed
	}
	if flags.Changed("no-delay") {
		cfg.Simulation.NoDelay = runFlags.noDelay
	}
	if flags.Changed("rounds") {
		cfg.Simulation.Rounds = runFlags.rounds
	}
	if err := cfg.Simulation.Validate(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	opts := []app.Option{
		app.WithInput(console.NewReader(cmd.InOrStdin())),
		app.WithOutput(console.NewWriter(cmd.OutOrStdout())),
		app.WithLogOutput(cmd.ErrOrStderr()),
	}
	if runFlags.dumpMetrics {
		ensurePromSink(cfg)
		opts = append(opts, app.WithMetricsDump(cmd.ErrOrStderr()))
	}
	svc, err := app.New(cfg, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	_, err = svc.Run(cmd.Context())
	return err
}

// ensurePromSink adds a Prometheus sink when none is configured so the dump
// carries the outcome counters and the score gauge.
func ensurePromSink(cfg *config.Config) {
	for _, s := range cfg.Metrics.Sinks {
		if s.Type == "prometheus" {
			return
		}
	}
	cfg.Metrics.Sinks = append(cfg.Metrics.Sinks, factory.ModuleConfig{Type: "prometheus"})
}
