package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads and parses the configuration from file and environment
// variables. Environment variable placeholders in the YAML (${VAR_NAME})
// are expanded before parsing.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v := newViper()
	if err := v.ReadConfig(bytes.NewBufferString(os.ExpandEnv(string(data)))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return cfg, nil
}

// LoadWithDefaults loads configuration with defaults for optional fields.
// A missing config file is not an error; defaults and environment variables
// alone produce a runnable configuration.
func LoadWithDefaults(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	v := newViper()
	setDefaults(v)

	if data, err := os.ReadFile(configPath); err == nil {
		if err := v.ReadConfig(bytes.NewBufferString(os.ExpandEnv(string(data)))); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("MATCHCAST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "matchcast")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout_seconds", 10)
	v.SetDefault("server.write_timeout_seconds", 10)
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("data.dir", "data")
	v.SetDefault("data.timeout_seconds", 30)
	v.SetDefault("data.max_retries", 3)
	v.SetDefault("data.rate_limit", 2.0)
	v.SetDefault("data.circuit_breaker_max", 5)

	v.SetDefault("model.backend", BackendAuto)
	v.SetDefault("model.artifact_path", "model.json")
	v.SetDefault("model.confidence_threshold", 0)

	v.SetDefault("training.epochs", 400)
	v.SetDefault("training.learning_rate", 0.15)
	v.SetDefault("training.test_fraction", 0.2)
	v.SetDefault("training.cv_folds", 5)
	v.SetDefault("training.seed", 42)

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl_seconds", 300)
	v.SetDefault("cache.cleanup_interval_seconds", 600)
	v.SetDefault("cache.max_size", 1024)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("schedule.enabled", false)
	v.SetDefault("schedule.refresh_cron", "0 4 * * *")
}
