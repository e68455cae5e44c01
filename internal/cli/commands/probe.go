package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/conduit-lang/lspcontract/internal/cli/config"
	"github.com/conduit-lang/lspcontract/internal/cli/ui"
	"github.com/conduit-lang/lspcontract/internal/lsp"
	"github.com/conduit-lang/lspcontract/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewProbeCommand creates the probe command
func NewProbeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Start a probe language server that guards editor traffic",
		Long: `Start a minimal language server on stdin/stdout. Every message the editor
sends and every reply the probe returns is checked against the declared
method types.

Point your editor at "lspcontract probe" to see whether its requests honor
the contract. Logs go to stderr. With --metrics-addr the guard's decisions
are exported for Prometheus at /metrics on that address.

Guard policies come from lspcontract.yaml and LSPCONTRACT_* environment
variables, and can be overridden with flags:
  • off     - do not check
  • warn    - log violations and let the message through
  • reject  - answer violating calls with an error and drop notifications`,
		Args: cobra.NoArgs,
		RunE: runProbe,
	}

	cmd.Flags().String("config-dir", ".", "Directory holding lspcontract.yaml")
	cmd.Flags().String("inbound", "", "Policy for client messages (overrides guard.inbound)")
	cmd.Flags().String("outbound", "", "Policy for probe replies (overrides guard.outbound)")
	cmd.Flags().String("unknown-methods", "", "Policy for unregistered methods (overrides guard.unknown_methods)")
	cmd.Flags().String("log-level", "", "Log level (overrides log.level)")
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (overrides probe.metrics_addr)")

	return cmd
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := loadProbeConfig(cmd)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.ConfigError(err.Error(), noColor))
		return &reportedError{err: err}
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var collector *metrics.Collector
	if cfg.Probe.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		collector = metrics.NewWithRegistry(reg)

		server := metrics.NewServer(cfg.Probe.MetricsAddr, reg, logger)
		if err := server.Start(); err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Warn("Failed to stop metrics server", zap.Error(err))
			}
		}()
	}

	guard, err := newGuard(cfg.Guard, collector, logger)
	if err != nil {
		return err
	}
	if guard.Options().Inbound == lsp.PolicyOff {
		fmt.Fprint(cmd.ErrOrStderr(), ui.Warning("Inbound checking is off, client messages pass unchecked", noColor))
	}

	probe := lsp.NewProbe(lsp.ProbeOptions{
		ServerName:    cfg.Probe.ServerName,
		ServerVersion: cfg.Probe.ServerVersion,
		Guard:         guard,
		Logger:        logger,
	})

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logger.Info("Received signal", zap.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	return probe.Run(ctx, lsp.Stdio())
}

// loadProbeConfig loads the configuration and applies the command's flag
// overrides on top
func loadProbeConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	dir, _ := flags.GetString("config-dir")
	cfg, err := config.LoadFrom(dir)
	if err != nil {
		return nil, err
	}

	for flag, target := range map[string]*string{
		"inbound":         &cfg.Guard.Inbound,
		"outbound":        &cfg.Guard.Outbound,
		"unknown-methods": &cfg.Guard.UnknownMethods,
		"log-level":       &cfg.Log.Level,
		"metrics-addr":    &cfg.Probe.MetricsAddr,
	} {
		if flags.Changed(flag) {
			*target, _ = flags.GetString(flag)
		}
	}

	if cfg.Probe.ServerVersion == "" {
		cfg.Probe.ServerVersion = Version
	}
	return cfg, nil
}

func newGuard(cfg config.GuardConfig, collector *metrics.Collector, logger *zap.Logger) (*lsp.Guard, error) {
	opts := lsp.GuardOptions{Metrics: collector, Logger: logger}

	for _, p := range []struct {
		name   string
		value  string
		target *lsp.Policy
	}{
		{"inbound", cfg.Inbound, &opts.Inbound},
		{"outbound", cfg.Outbound, &opts.Outbound},
		{"unknown methods", cfg.UnknownMethods, &opts.UnknownMethods},
	} {
		policy, err := lsp.ParsePolicy(p.value)
		if err != nil {
			return nil, fmt.Errorf("%s policy: %w", p.name, err)
		}
		*p.target = policy
	}

	return lsp.NewGuard(nil, nil, opts), nil
}
