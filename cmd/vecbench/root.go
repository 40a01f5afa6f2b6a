package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-vecbench/bench"
	"github.com/cwbudde/algo-vecbench/internal/config"
	"github.com/cwbudde/algo-vecbench/internal/logging"
	"github.com/cwbudde/algo-vecbench/kernel"
	"github.com/cwbudde/algo-vecbench/metrics"
	"github.com/cwbudde/algo-vecbench/report"
)

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "vecbench",
		Short: "Time elementwise float32 vector kernels",
		Long: "vecbench fills two float32 arrays with ones, applies an elementwise\n" +
			"add or multiply kernel using the best backend for this CPU, and reports\n" +
			"the kernel time together with the first and last five results.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.New(cmd.Flags())
			if err != nil {
				return err
			}
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVar(&configFile, "config", "", "config file (yaml, toml or json)")

	cmd.AddCommand(newBackendsCmd())
	return cmd
}

func run(stdout, stderr io.Writer, cfg config.Config) error {
	log, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	ops, err := kernel.ParseOps(cfg.Ops)
	if err != nil {
		return err
	}

	bm := bench.New(
		bench.WithWorkers(cfg.Workers),
		bench.WithMemoryLimit(cfg.MemoryLimit),
		bench.WithVerify(cfg.Verify),
		bench.WithLogger(log),
	)

	log.Info("benchmark starting",
		"size", cfg.Size,
		"ops", cfg.Ops,
		"repeat", cfg.Repeat,
		"backend", kernel.Backend(),
		"features", kernel.HostFeatures(),
		"memory_limit", bm.MemoryLimit(),
	)

	var m *metrics.Metrics
	if cfg.MetricsFile != "" {
		m = metrics.New()
	}

	text := report.NewText(stdout, report.ResolveColor(cfg.Color, stdout))
	started := time.Now()

	var writeErr error
	trials := bm.RunTrials(ops, cfg.Size, cfg.Repeat, func(t bench.Trial) {
		if m != nil {
			m.Observe(t)
		}
		if cfg.Format == "text" && writeErr == nil {
			writeErr = text.Trial(t)
		}
	})
	if writeErr != nil {
		return writeErr
	}

	switch cfg.Format {
	case "json":
		if err := report.WriteJSON(stdout, report.NewRunReport(trials, cfg.Size, started)); err != nil {
			return err
		}
	default:
		if err := text.Summary(trials); err != nil {
			return err
		}
	}

	if m != nil {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		log.Info("metrics written", "path", cfg.MetricsFile)
	}

	return failures(log, trials)
}

// failures returns an error if any trial failed.
func failures(log *slog.Logger, trials []bench.Trial) error {
	failed := 0
	for _, t := range trials {
		if !t.OK() {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}
	log.Error("benchmark finished with failures", "failed", failed, "total", len(trials))
	return fmt.Errorf("%d of %d trials failed", failed, len(trials))
}
