package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileName is the config file looked up in the working directory, without
// its extension
const FileName = "lspcontract"

// EnvPrefix prefixes every environment override, e.g. LSPCONTRACT_GUARD_INBOUND
const EnvPrefix = "LSPCONTRACT"

// Config represents the lspcontract configuration
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Guard GuardConfig `mapstructure:"guard"`
	Probe ProbeConfig `mapstructure:"probe"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GuardConfig holds the policy names the guard is built from
type GuardConfig struct {
	Inbound        string `mapstructure:"inbound"`
	Outbound       string `mapstructure:"outbound"`
	UnknownMethods string `mapstructure:"unknown_methods"`
}

// ProbeConfig represents probe server configuration. An empty ServerVersion
// is filled in with the binary's version. An empty MetricsAddr disables the
// metrics endpoint.
type ProbeConfig struct {
	ServerName    string `mapstructure:"server_name"`
	ServerVersion string `mapstructure:"server_version"`
	MetricsAddr   string `mapstructure:"metrics_addr"`
}

// Load loads the configuration from lspcontract.yaml and LSPCONTRACT_*
// environment variables
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom is Load with the config file looked up in dir
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("guard.inbound", "reject")
	v.SetDefault("guard.outbound", "warn")
	v.SetDefault("guard.unknown_methods", "pass")
	v.SetDefault("probe.server_name", "lspcontract-probe")
	v.SetDefault("probe.server_version", "")
	v.SetDefault("probe.metrics_addr", "")

	// Set config name and paths
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	// Enable environment variable support
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

var policies = map[string]bool{"off": true, "pass": true, "warn": true, "reject": true}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if _, err := parseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got: %s", cfg.Log.Format)
	}

	for key, value := range map[string]string{
		"guard.inbound":         cfg.Guard.Inbound,
		"guard.outbound":        cfg.Guard.Outbound,
		"guard.unknown_methods": cfg.Guard.UnknownMethods,
	} {
		if !policies[strings.ToLower(strings.TrimSpace(value))] {
			return fmt.Errorf("%s must be off, pass, warn or reject, got: %s", key, value)
		}
	}

	if strings.TrimSpace(cfg.Probe.ServerName) == "" {
		return fmt.Errorf("probe.server_name must not be empty")
	}
	return nil
}

// NewLogger builds a zap logger for cfg. It always writes to stderr because
// stdout carries the LSP stream.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

func parseLevel(s string) (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, err
	}
	return level, nil
}
