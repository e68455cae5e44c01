package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/conduit-lang/lspcontract/internal/cli/config"
	"github.com/conduit-lang/lspcontract/internal/lsp"
	"github.com/conduit-lang/lspcontract/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProbeCommand_Flags(t *testing.T) {
	cmd := NewProbeCommand()

	for _, name := range []string{"config-dir", "inbound", "outbound", "unknown-methods", "log-level", "metrics-addr"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}
}

func TestLoadProbeConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName+".yaml"), []byte("guard:\n  outbound: reject\n"), 0644))

	cmd := NewProbeCommand()
	require.NoError(t, cmd.Flags().Set("config-dir", dir))
	require.NoError(t, cmd.Flags().Set("inbound", "warn"))
	require.NoError(t, cmd.Flags().Set("log-level", "debug"))
	require.NoError(t, cmd.Flags().Set("metrics-addr", "127.0.0.1:0"))

	cfg, err := loadProbeConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Guard.Inbound)
	assert.Equal(t, "reject", cfg.Guard.Outbound)
	assert.Equal(t, "pass", cfg.Guard.UnknownMethods)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:0", cfg.Probe.MetricsAddr)
	assert.Equal(t, Version, cfg.Probe.ServerVersion)
}

func TestLoadProbeConfig_KeepsConfiguredVersion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName+".yaml"), []byte("probe:\n  server_version: 9.9.9\n"), 0644))

	cmd := NewProbeCommand()
	require.NoError(t, cmd.Flags().Set("config-dir", dir))

	cfg, err := loadProbeConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "9.9.9", cfg.Probe.ServerVersion)
}

func TestProbeCommand_BadConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName+".yaml"), []byte("log:\n  format: xml\n"), 0644))

	_, stderr, err := execute(t, nil, "probe", "--config-dir", dir)
	require.Error(t, err)
	assert.Contains(t, stderr, "CONFIGURATION ERROR")
	assert.Contains(t, stderr, "log.format")
}

func TestNewGuard(t *testing.T) {
	collector := metrics.NewWithRegistry(prometheus.NewRegistry())
	guard, err := newGuard(config.GuardConfig{
		Inbound:        "reject",
		Outbound:       "warn",
		UnknownMethods: "pass",
	}, collector, zap.NewNop())
	require.NoError(t, err)

	opts := guard.Options()
	assert.Equal(t, lsp.PolicyReject, opts.Inbound)
	assert.Equal(t, lsp.PolicyWarn, opts.Outbound)
	assert.Equal(t, lsp.PolicyOff, opts.UnknownMethods)
	assert.Same(t, collector, opts.Metrics)

	_, err = newGuard(config.GuardConfig{Inbound: "off", Outbound: "explode", UnknownMethods: "off"}, nil, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outbound policy")
}
